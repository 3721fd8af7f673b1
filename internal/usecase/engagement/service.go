package engagement

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Guyuepp/portfolio-cms/domain"
)

// Option configures a Service
type Option func(*Service)

// WithClock overrides the time source used for CreatedAt/UpdatedAt
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// Service is the engagement store for one content kind. All state changes are
// delegated to single atomic repository commands, so the service itself holds
// no locks and keeps no state between calls.
type Service struct {
	kind     domain.Kind
	repo     domain.EngagementRepository
	ids      domain.IDGenerator
	validate *validator.Validate
	now      func() time.Time
}

var _ domain.EngagementUsecase = (*Service)(nil)

// NewService will create a new engagement service bound to kind
func NewService(kind domain.Kind, repo domain.EngagementRepository, ids domain.IDGenerator, opts ...Option) *Service {
	s := &Service{
		kind:     kind,
		repo:     repo,
		ids:      ids,
		validate: validator.New(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// timestamp is truncated to milliseconds, the precision every store keeps
func (s *Service) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

func (s *Service) checkID(field, id string) error {
	if !s.ids.Valid(id) {
		return domain.InvalidField(field)
	}
	return nil
}

func (s *Service) checkInput(in *domain.CommentInput) error {
	in.Author = strings.TrimSpace(in.Author)
	in.AuthorPhoto = strings.TrimSpace(in.AuthorPhoto)
	in.Text = strings.TrimSpace(in.Text)

	err := s.validate.Struct(in)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return domain.InvalidField(verrs[0].Field())
	}
	return err
}

func (s *Service) LikeItem(ctx context.Context, itemID, userID string) (int64, error) {
	if err := s.checkID("itemId", itemID); err != nil {
		return 0, err
	}
	if strings.TrimSpace(userID) == "" {
		return 0, domain.InvalidField("userId")
	}
	return s.repo.AddLike(ctx, s.kind, itemID, userID)
}

func (s *Service) UnlikeItem(ctx context.Context, itemID, userID string) (int64, error) {
	if err := s.checkID("itemId", itemID); err != nil {
		return 0, err
	}
	if strings.TrimSpace(userID) == "" {
		return 0, domain.InvalidField("userId")
	}
	count, err := s.repo.RemoveLike(ctx, s.kind, itemID, userID)
	if err != nil {
		return 0, err
	}
	return max(count, 0), nil
}

func (s *Service) CommentItem(ctx context.Context, itemID string, in domain.CommentInput) (domain.Comment, error) {
	if err := s.checkInput(&in); err != nil {
		return domain.Comment{}, err
	}
	if err := s.checkID("itemId", itemID); err != nil {
		return domain.Comment{}, err
	}

	id, err := s.ids.NewID()
	if err != nil {
		return domain.Comment{}, err
	}
	c := domain.Comment{
		ID:          id,
		Author:      in.Author,
		AuthorPhoto: in.AuthorPhoto,
		Text:        in.Text,
		CreatedAt:   s.timestamp(),
		Replies:     []domain.Reply{},
	}
	if err := s.repo.PushComment(ctx, s.kind, itemID, c); err != nil {
		return domain.Comment{}, err
	}
	return c, nil
}

// ReplyItem requires the comment to belong to itemID; a comment id that lives
// under another item is reported as ErrNotFound.
func (s *Service) ReplyItem(ctx context.Context, itemID, commentID string, in domain.CommentInput) (domain.Comment, error) {
	if err := s.checkInput(&in); err != nil {
		return domain.Comment{}, err
	}
	if err := s.checkID("itemId", itemID); err != nil {
		return domain.Comment{}, err
	}
	if err := s.checkID("commentId", commentID); err != nil {
		return domain.Comment{}, err
	}

	id, err := s.ids.NewID()
	if err != nil {
		return domain.Comment{}, err
	}
	now := s.timestamp()
	r := domain.Reply{
		ID:          id,
		CommentID:   commentID,
		Author:      in.Author,
		AuthorPhoto: in.AuthorPhoto,
		Text:        in.Text,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return s.repo.PushReply(ctx, s.kind, itemID, commentID, r)
}

func (s *Service) EditComment(ctx context.Context, commentID, text string) (domain.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Comment{}, domain.InvalidField("comment")
	}
	if err := s.checkID("commentId", commentID); err != nil {
		return domain.Comment{}, err
	}
	_, c, err := s.repo.SetCommentText(ctx, s.kind, commentID, text)
	if err != nil {
		return domain.Comment{}, err
	}
	return c, nil
}

func (s *Service) DeleteComment(ctx context.Context, commentID string) error {
	if err := s.checkID("commentId", commentID); err != nil {
		return err
	}
	_, err := s.repo.PullComment(ctx, s.kind, commentID)
	return err
}

// GetComment finds a comment by id alone among items of this kind
func (s *Service) GetComment(ctx context.Context, commentID string) (domain.Comment, error) {
	if err := s.checkID("commentId", commentID); err != nil {
		return domain.Comment{}, err
	}
	agg, err := s.repo.FindByCommentID(ctx, s.kind, commentID)
	if err != nil {
		return domain.Comment{}, err
	}
	c, ok := agg.CommentByID(commentID)
	if !ok {
		return domain.Comment{}, domain.ErrNotFound
	}
	return c, nil
}

func (s *Service) GetAggregate(ctx context.Context, itemID string) (domain.Aggregate, error) {
	if err := s.checkID("itemId", itemID); err != nil {
		return domain.Aggregate{}, err
	}
	return s.repo.GetAggregate(ctx, s.kind, itemID)
}
