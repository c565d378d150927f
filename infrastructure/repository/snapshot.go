// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/youstats/infrastructure/database/postgres"
	"github.com/vfg2006/youstats/internal/domain"
	"github.com/vfg2006/youstats/pkg/utils"
)

//go:generate mockgen -source=snapshot.go -destination=mocks/snapshot.go -package=mocks

const (
	snapshotsTable = "channel_snapshots"
	videosTable    = "channel_videos"

	// Limite de parâmetros do postgres é 65535; 7 colunas por vídeo
	videosBatchSize = 1000
)

type SnapshotRepository interface {
	SaveSnapshot(ctx context.Context, snapshot *domain.ChannelSnapshot) error
	GetLatestSnapshot(ctx context.Context, channelName string) (*domain.ChannelSnapshot, error)
}

type snapshotRepository struct {
	conn postgres.Conn
}

func NewSnapshotRepository(conn postgres.Conn) SnapshotRepository {
	return &snapshotRepository{
		conn: conn,
	}
}

// SaveSnapshot grava o snapshot e os vídeos na mesma transação
func (r *snapshotRepository) SaveSnapshot(ctx context.Context, snapshot *domain.ChannelSnapshot) error {
	if snapshot == nil {
		return errors.New("snapshot nil")
	}

	id := snapshot.ID
	if id == "" {
		generated, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar ID do snapshot: %w", err)
		}
		id = generated
	}

	return r.conn.RunInTransaction(ctx, func(q postgres.Queryer) error {
		query, args, err := insertSnapshotQuery(id, snapshot).ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir query de inserção: %w", err)
		}

		if _, err := q.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("erro ao inserir snapshot: %w", err)
		}

		for start := 0; start < len(snapshot.Videos); start += videosBatchSize {
			end := min(start+videosBatchSize, len(snapshot.Videos))

			query, args, err := insertVideosQuery(id, snapshot.Videos[start:end], start).ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir query de vídeos: %w", err)
			}

			if _, err := q.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("erro ao inserir vídeos: %w", err)
			}
		}

		return nil
	})
}

// GetLatestSnapshot retorna o snapshot mais recente do canal, ou nil quando não existe
func (r *snapshotRepository) GetLatestSnapshot(ctx context.Context, channelName string) (*domain.ChannelSnapshot, error) {
	query, args, err := latestSnapshotQuery(domain.DisplayChannelName(channelName)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var (
		id, channelID string
		profile       domain.ChannelProfile
		hasProfile    bool
		harvestedAt   sql.NullTime
		displayName   sql.NullString
		joinedOn      sql.NullString
		subscribers   sql.NullInt64
		videoCount    sql.NullInt64
		totalViews    sql.NullInt64
	)

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&id,
		&channelID,
		&hasProfile,
		&displayName,
		&subscribers,
		&videoCount,
		&joinedOn,
		&totalViews,
		&harvestedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar snapshot: %w", err)
	}

	videos, err := r.videosOf(ctx, id)
	if err != nil {
		return nil, err
	}

	var channelProfile *domain.ChannelProfile
	if hasProfile {
		profile.DisplayName = displayName.String
		profile.SubscriberCount = subscribers.Int64
		profile.VideoCount = videoCount.Int64
		profile.JoinedOn = joinedOn.String
		profile.TotalViews = totalViews.Int64
		channelProfile = &profile
	}

	return domain.NewChannelSnapshot(id, channelID, channelProfile, videos, harvestedAt.Time), nil
}

func (r *snapshotRepository) videosOf(ctx context.Context, snapshotID string) ([]domain.VideoRecord, error) {
	query, args, err := videosQuery(snapshotID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	videos := make([]domain.VideoRecord, 0)
	for rows.Next() {
		var (
			title, postedOn, description, link string
			views                              int64
		)
		if err := rows.Scan(&title, &views, &postedOn, &description, &link); err != nil {
			return nil, fmt.Errorf("erro ao escanear vídeo: %w", err)
		}

		video, err := videoFromRow(title, views, postedOn, description, link)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"snapshot_id": snapshotID,
				"link":        link,
			}).Warn("Vídeo inválido ignorado na leitura do snapshot")
			continue
		}
		videos = append(videos, video)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return videos, nil
}

// videoFromRow reconstrói o vídeo lido do banco com as validações de domain.NewVideoRecord
func videoFromRow(title string, views int64, postedOn, description, link string) (domain.VideoRecord, error) {
	return domain.NewVideoRecord(title, views, postedOn, description, link)
}

func insertSnapshotQuery(id string, snapshot *domain.ChannelSnapshot) squirrel.InsertBuilder {
	var (
		displayName, joinedOn               sql.NullString
		subscribers, videoCount, totalViews sql.NullInt64
	)

	if p := snapshot.Profile; p != nil {
		displayName = sql.NullString{String: p.DisplayName, Valid: true}
		subscribers = sql.NullInt64{Int64: p.SubscriberCount, Valid: true}
		videoCount = sql.NullInt64{Int64: p.VideoCount, Valid: true}
		joinedOn = sql.NullString{String: p.JoinedOn, Valid: true}
		totalViews = sql.NullInt64{Int64: p.TotalViews, Valid: true}
	}

	return squirrel.
		Insert(snapshotsTable).
		Columns(
			"id",
			"channel_id",
			"channel_name",
			"has_profile",
			"header_name",
			"subscribers_num",
			"videos_num",
			"join_date",
			"total_views",
			"years_active",
			"harvested_at",
		).
		Values(
			id,
			snapshot.ChannelID,
			snapshot.ChannelName,
			snapshot.Profile != nil,
			displayName,
			subscribers,
			videoCount,
			joinedOn,
			totalViews,
			pq.Array(snapshot.YearsActive),
			snapshot.HarvestedAt,
		).
		PlaceholderFormat(squirrel.Dollar)
}

func insertVideosQuery(snapshotID string, videos []domain.VideoRecord, offset int) squirrel.InsertBuilder {
	query := squirrel.
		Insert(videosTable).
		Columns("snapshot_id", "position", "title", "views", "posted_on", "description", "link").
		PlaceholderFormat(squirrel.Dollar)

	for i, video := range videos {
		query = query.Values(snapshotID, offset+i+1, video.Title, video.Views, video.PostedOn, video.Description, video.Link)
	}

	return query
}

func latestSnapshotQuery(channelName string) squirrel.SelectBuilder {
	return squirrel.
		Select(
			"cs.id",
			"cs.channel_id",
			"cs.has_profile",
			"cs.header_name",
			"cs.subscribers_num",
			"cs.videos_num",
			"cs.join_date",
			"cs.total_views",
			"cs.harvested_at",
		).
		From(snapshotsTable + " cs").
		Where(squirrel.Eq{"cs.channel_name": channelName}).
		OrderBy("cs.harvested_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar)
}

func videosQuery(snapshotID string) squirrel.SelectBuilder {
	return squirrel.
		Select("cv.title", "cv.views", "cv.posted_on", "cv.description", "cv.link").
		From(videosTable + " cv").
		Where(squirrel.Eq{"cv.snapshot_id": snapshotID}).
		OrderBy("cv.position ASC").
		PlaceholderFormat(squirrel.Dollar)
}
