package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	deliverymiddleware "github.com/believemanasseh/luciddreams/internal/delivery/http/middleware"
	"github.com/believemanasseh/luciddreams/internal/delivery/http/response"
	"github.com/believemanasseh/luciddreams/internal/domain/entity"
	domainerrors "github.com/believemanasseh/luciddreams/internal/domain/errors"
	"github.com/believemanasseh/luciddreams/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PostResponse is the public post DTO.
type PostResponse struct {
	ID       int64     `json:"id"`
	Title    string    `json:"title"`
	Text     string    `json:"text"`
	Created  time.Time `json:"created"`
	Modified time.Time `json:"modified"`
	UserID   int64     `json:"user_id"`
}

func toPostResponse(post *entity.Post) *PostResponse {
	return &PostResponse{
		ID:       post.ID,
		Title:    post.Title,
		Text:     post.Text,
		Created:  post.CreatedAt,
		Modified: post.UpdatedAt,
		UserID:   post.UserID,
	}
}

// PostHandler holds dependencies for post-related handlers.
type PostHandler struct {
	uc     usecase.PostUsecase
	logger *slog.Logger
}

// NewPostHandler is the constructor for PostHandler, injected by Fx.
func NewPostHandler(uc usecase.PostUsecase, logger *slog.Logger) *PostHandler {
	return &PostHandler{
		uc:     uc,
		logger: logger,
	}
}

// ownerID reads the authenticated owner set by the auth middleware.
func ownerID(c echo.Context) (int64, bool) {
	id, ok := c.Get(deliverymiddleware.ContextKeyUserID).(int64)

	return id, ok
}

// Create handles the create-post request.
func (h *PostHandler) Create(c echo.Context) error {
	owner, ok := ownerID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrInvalidToken)
	}

	var input usecase.CreatePostInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post input")
	}
	if err := c.Validate(&input); err != nil {
		return response.ValidationError(c, err.Error())
	}

	post, err := h.uc.CreatePost(c.Request().Context(), owner, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPostResponse(post))
}

// List handles the list-posts request. The body is always a JSON array,
// empty when the owner has no posts.
func (h *PostHandler) List(c echo.Context) error {
	owner, ok := ownerID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrInvalidToken)
	}

	posts, err := h.uc.ListPosts(c.Request().Context(), owner)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]*PostResponse, 0, len(posts))
	for _, post := range posts {
		out = append(out, toPostResponse(post))
	}

	return response.Success(c, http.StatusOK, out)
}

// Delete handles the delete-post request. An unparsable id can never name an
// existing post, so it is reported as not found rather than a binding error.
func (h *PostHandler) Delete(c echo.Context) error {
	owner, ok := ownerID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrInvalidToken)
	}

	postID, err := strconv.ParseInt(c.Param("post_id"), 10, 64)
	if err != nil {
		return errors.WithStack(domainerrors.ErrPostNotFound)
	}

	if err := h.uc.DeletePost(c.Request().Context(), owner, postID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.Message{Message: "Post deleted successfully"})
}
