// Command demo wires the registry together with logging and audit events,
// seeds it with sample content, and walks through the main operations.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/yancdev/socialcore/internal/config"
	"github.com/yancdev/socialcore/internal/domain"
	"github.com/yancdev/socialcore/internal/events"
	"github.com/yancdev/socialcore/internal/platform/logger"
	"github.com/yancdev/socialcore/internal/platform/memory"
	"github.com/yancdev/socialcore/internal/store"
)

// logHandler forwards audit events into the structured log.
type logHandler struct {
	log *slog.Logger
}

func (h *logHandler) HandleEvent(_ context.Context, event *events.AuditEvent) error {
	h.log.Info("audit", "event_id", event.ID, "event_type", event.Type, "userName", event.UserName)
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "demo: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.Setup(cfg.Log)

	emitter := events.NewInMemoryEmitter(log)
	emitter.RegisterHandler(&logHandler{log: log})
	reg := memory.New(log, emitter)

	yan := domain.User{ID: 1, Name: "Yan", UserName: "yanc", Password: "s3cret", Email: "yan@example.com"}
	ana := domain.User{ID: 2, Name: "Ana", UserName: "ana", Password: "hunter2", Email: "ana@example.com"}
	for _, u := range []domain.User{yan, ana} {
		if err := reg.CreateUser(u); err != nil {
			return err
		}
	}
	if err := reg.LogInUser("YANC", "s3cret"); err != nil {
		return err
	}

	created, err := domain.ParseDate("2025/01/10")
	if err != nil {
		return err
	}
	post := domain.Post{ID: 2, Content: "first post", Category: "general", CreatedAt: created}
	if err := reg.CreatePost(yan.ID, post); err != nil {
		return err
	}

	photo := domain.Photo{ID: 1, Type: domain.SupportedPhotoType, Description: "sunset", CreateDat: created}
	if _, err := reg.UploadPhoto(yan.ID, photo); err != nil {
		return err
	}

	comment := domain.Comment{ID: 1, Content: "  nice  ", AuthorID: ana.ID, CreatedAt: created}
	if err := reg.CreateComment(yan.ID, store.TargetPost, post.ID, comment); err != nil {
		return err
	}

	comments, err := reg.ListCommentsForPost(yan.ID, post.ID)
	if err != nil {
		return err
	}
	for _, c := range comments {
		log.Info("comment on post", "postId", post.ID, "commentId", c.ID, "content", c.Content, "authorId", c.AuthorID)
	}

	inRange, err := reg.GetPostsByRangeDate(yan.ID, "2025/01/01", "2025/12/31")
	if err != nil {
		return err
	}
	log.Info("posts in range", "count", len(inRange))
	return nil
}
