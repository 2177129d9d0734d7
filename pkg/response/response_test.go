package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"pet-blog-api/pkg/apperr"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestFromErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", apperr.ErrNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("get post: %w", apperr.ErrNotFound), http.StatusNotFound},
		{"validation", apperr.Invalid("title", "Title is required"), http.StatusBadRequest},
		{"fetch failed", fmt.Errorf("%w: timeout", apperr.ErrFetchFailed), http.StatusInternalServerError},
		{"upload failed", apperr.ErrUploadFailed, http.StatusInternalServerError},
		{"store error", apperr.WrapStore("find posts", errors.New("boom")), http.StatusInternalServerError},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(w)

			FromError(ctx, c.err, "Post not found")

			if w.Code != c.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, c.wantStatus)
			}

			var body map[string]interface{}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid json body: %v", err)
			}
			if _, ok := body["error"]; !ok {
				t.Fatalf("error body must carry a message: %v", body)
			}
		})
	}
}

func TestValidationErrorBody(t *testing.T) {
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)

	verr := apperr.Invalid("title", "Title is required").Add("images", "Maximum 18 images allowed per post")
	ValidationError(ctx, verr)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var body struct {
		Error  string `json:"error"`
		Errors []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	if len(body.Errors) != 2 {
		t.Fatalf("expected 2 field errors, got %v", body.Errors)
	}
	if body.Errors[0].Field != "title" {
		t.Fatalf("unexpected first field: %v", body.Errors[0])
	}
}

func TestSuccessHelpers(t *testing.T) {
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	Created(ctx, map[string]string{"id": "abc"})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", w.Code)
	}

	w = httptest.NewRecorder()
	ctx, _ = gin.CreateTestContext(w)
	Message(ctx, "Post deleted successfully")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	if body["message"] != "Post deleted successfully" {
		t.Fatalf("unexpected body: %v", body)
	}
}
