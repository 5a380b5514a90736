package usecase

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"videotube/domain/dto"
	"videotube/domain/model"
	"videotube/domain/repository"
)

type IPlaylistUsecase interface {
	Create(ctx context.Context, req dto.CreatePlaylistRequest, caller bson.ObjectID) (*model.Playlist, error)
	GetByID(ctx context.Context, id, caller bson.ObjectID) (*model.PlaylistWithVideos, error)
	ListByOwner(ctx context.Context, owner, caller bson.ObjectID) ([]model.PlaylistWithVideos, error)
	ListContainingVideo(ctx context.Context, videoID, caller bson.ObjectID) ([]model.Playlist, error)
	AddVideo(ctx context.Context, playlistID, videoID, caller bson.ObjectID) (*model.Playlist, error)
	RemoveVideo(ctx context.Context, playlistID, videoID, caller bson.ObjectID) (*model.Playlist, error)
	Update(ctx context.Context, id bson.ObjectID, req dto.UpdatePlaylistRequest, caller bson.ObjectID) (*model.Playlist, error)
	Delete(ctx context.Context, id, caller bson.ObjectID) error
}

type playlistUsecase struct {
	playlistRepository repository.IPlaylist
	videoRepository    repository.IVideo
}

func NewPlaylistUsecase(playlistRepository repository.IPlaylist, videoRepository repository.IVideo) IPlaylistUsecase {
	return &playlistUsecase{
		playlistRepository: playlistRepository,
		videoRepository:    videoRepository,
	}
}

func (u *playlistUsecase) Create(ctx context.Context, req dto.CreatePlaylistRequest, caller bson.ObjectID) (*model.Playlist, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, model.BadRequest("name is required")
	}
	playlist := &model.Playlist{
		Name:        req.Name,
		Description: req.Description,
		Creator:     caller,
	}
	if _, err := u.playlistRepository.Insert(ctx, playlist); err != nil {
		return nil, model.Internal("error while creating a playlist", err)
	}
	return playlist, nil
}

func (u *playlistUsecase) GetByID(ctx context.Context, id, caller bson.ObjectID) (*model.PlaylistWithVideos, error) {
	playlist, err := u.playlistRepository.GetByIDWithVideos(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "playlist")
	}
	// Watch lists expose viewing habits, so their existence is hidden from
	// everyone but their creator.
	if model.IsPrivateList(playlist.Name) && playlist.Creator != caller {
		return nil, model.NotFound("playlist")
	}
	return playlist, nil
}

func (u *playlistUsecase) ListByOwner(ctx context.Context, owner, caller bson.ObjectID) ([]model.PlaylistWithVideos, error) {
	playlists, err := u.playlistRepository.ListByOwner(ctx, owner, owner == caller)
	if err != nil {
		return nil, model.Internal("error while getting user playlists", err)
	}
	return playlists, nil
}

func (u *playlistUsecase) ListContainingVideo(ctx context.Context, videoID, caller bson.ObjectID) ([]model.Playlist, error) {
	playlists, err := u.playlistRepository.ListContainingVideo(ctx, caller, videoID)
	if err != nil {
		return nil, model.Internal("error while listing playlists containing video", err)
	}
	return playlists, nil
}

func (u *playlistUsecase) AddVideo(ctx context.Context, playlistID, videoID, caller bson.ObjectID) (*model.Playlist, error) {
	playlist, err := u.playlistRepository.GetByID(ctx, playlistID)
	if err != nil {
		return nil, asNotFound(err, "playlist")
	}
	if err := ensureOwner(playlist.Creator, caller, "playlist"); err != nil {
		return nil, err
	}
	if _, err := u.videoRepository.GetRaw(ctx, videoID); err != nil {
		return nil, asNotFound(err, "video")
	}
	if err := u.playlistRepository.AddVideo(ctx, playlistID, videoID); err != nil {
		return nil, asNotFound(err, "playlist")
	}
	return u.playlistRepository.GetByID(ctx, playlistID)
}

func (u *playlistUsecase) RemoveVideo(ctx context.Context, playlistID, videoID, caller bson.ObjectID) (*model.Playlist, error) {
	playlist, err := u.playlistRepository.GetByID(ctx, playlistID)
	if err != nil {
		return nil, asNotFound(err, "playlist")
	}
	if err := ensureOwner(playlist.Creator, caller, "playlist"); err != nil {
		return nil, err
	}
	if err := u.playlistRepository.RemoveVideo(ctx, playlistID, videoID); err != nil {
		return nil, asNotFound(err, "playlist")
	}
	return u.playlistRepository.GetByID(ctx, playlistID)
}

func (u *playlistUsecase) Update(ctx context.Context, id bson.ObjectID, req dto.UpdatePlaylistRequest, caller bson.ObjectID) (*model.Playlist, error) {
	playlist, err := u.playlistRepository.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "playlist")
	}
	if err := ensureOwner(playlist.Creator, caller, "playlist"); err != nil {
		return nil, err
	}
	updated, err := u.playlistRepository.Update(ctx, id, req.Name, req.Description)
	if err != nil {
		return nil, asNotFound(err, "playlist")
	}
	return updated, nil
}

func (u *playlistUsecase) Delete(ctx context.Context, id, caller bson.ObjectID) error {
	playlist, err := u.playlistRepository.GetByID(ctx, id)
	if err != nil {
		return asNotFound(err, "playlist")
	}
	if err := ensureOwner(playlist.Creator, caller, "playlist"); err != nil {
		return err
	}
	if err := u.playlistRepository.Delete(ctx, id); err != nil {
		return asNotFound(err, "playlist")
	}
	return nil
}
