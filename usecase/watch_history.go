package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"videotube/domain/repository"
)

// WatchHistoryMaintainer keeps each user's "Watch History" playlist a
// most-recent-first list of distinct videos. The list is unbounded, matching
// the product behavior; long-lived accounts grow it without limit.
type WatchHistoryMaintainer struct {
	playlistRepository repository.IPlaylist
}

func NewWatchHistoryMaintainer(playlistRepository repository.IPlaylist) *WatchHistoryMaintainer {
	return &WatchHistoryMaintainer{playlistRepository: playlistRepository}
}

// Record moves videoID to the front of the user's watch history. The
// locate-or-create and the de-dup pull are one atomic upsert; the front
// insertion is a second atomic step. A crash in between loses only the new
// head position, never the no-duplicates invariant.
func (m *WatchHistoryMaintainer) Record(ctx context.Context, user, videoID bson.ObjectID) error {
	playlist, err := m.playlistRepository.PullFromWatchHistory(ctx, user, videoID)
	if err != nil {
		return err
	}
	return m.playlistRepository.PushFront(ctx, playlist.ID, videoID)
}
