package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// The join must rebuild the videos array from the playlist's own ordered
// reference list, because $lookup returns matches in arbitrary order.
func TestVideoJoinStages_PreservesSequenceOrder(t *testing.T) {
	pipeline := videoJoinStages()
	require.Len(t, pipeline, 4)

	assert.Equal(t, "$lookup", pipeline[0][0].Key)

	remap := pipeline[1][0]
	require.Equal(t, "$addFields", remap.Key)
	videos := remap.Value.(bson.D)[0]
	assert.Equal(t, "videos", videos.Key)
	mapped := videos.Value.(bson.D)[0]
	// The ordered reference list drives the $map, not the lookup output.
	assert.Equal(t, "$map", mapped.Key)
	assert.Equal(t, "$videos", mapped.Value.(bson.D)[0].Value)

	// Dangling references (deleted videos) are filtered out, and the raw
	// lookup output never reaches the caller.
	assert.Equal(t, "$addFields", pipeline[2][0].Key)
	assert.Equal(t, "$project", pipeline[3][0].Key)
	assert.Equal(t, "videoDocs", pipeline[3][0].Value.(bson.D)[0].Key)
}
