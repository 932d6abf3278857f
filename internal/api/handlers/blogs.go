package handlers

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/baharkarakas/blog-backend/internal/api/httpx"
	"github.com/baharkarakas/blog-backend/internal/models"
	"github.com/baharkarakas/blog-backend/internal/services"
)

type BlogHandler struct {
	Blogs *services.BlogService
}

func NewBlogHandler(bs *services.BlogService) *BlogHandler {
	return &BlogHandler{Blogs: bs}
}

type createBlogReq struct {
	Title        string `json:"title"`
	Content      string `json:"content"`
	Author       string `json:"author"`
	Category     string `json:"category"`
	ExternalLink string `json:"externalLink"`
}

type createBlogResp struct {
	Message string      `json:"message"`
	Blog    models.Blog `json:"blog"`
}

type blogsResp struct {
	Blogs []models.Blog `json:"blogs"`
}

type updateContentReq struct {
	Content string `json:"content"`
}

func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBlogReq
	if err := httpx.Decode(r, &req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	b, err := h.Blogs.Create(r.Context(), services.CreateBlogInput{
		Title:        req.Title,
		Content:      req.Content,
		Author:       req.Author,
		Category:     req.Category,
		ExternalLink: req.ExternalLink,
	})
	if err != nil {
		httpx.WriteErr(w, r, "create blog", err, "Error creating blog, please try again")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, createBlogResp{Message: "Blog created successfully", Blog: b})
}

func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.Blogs.List(r.Context())
	if err != nil {
		httpx.WriteErr(w, r, "list blogs", err, "Error fetching blogs")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, blogsResp{Blogs: blogs})
}

func (h *BlogHandler) ListByAuthor(w http.ResponseWriter, r *http.Request) {
	username, err := pathParam(r, "username")
	if err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid username")
		return
	}
	blogs, err := h.Blogs.ListByAuthor(r.Context(), username)
	if err != nil {
		httpx.WriteErr(w, r, "list author blogs", err, "Error fetching blogs")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, blogsResp{Blogs: blogs})
}

func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Blogs.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpx.WriteErr(w, r, "delete blog", err, "Error deleting blog, please try again")
		return
	}
	httpx.WriteMessage(w, http.StatusOK, "Blog deleted successfully")
}

func (h *BlogHandler) UpdateContent(w http.ResponseWriter, r *http.Request) {
	var req updateContentReq
	if err := httpx.Decode(r, &req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	b, err := h.Blogs.UpdateContent(r.Context(), chi.URLParam(r, "id"), req.Content)
	if err != nil {
		httpx.WriteErr(w, r, "update blog", err, "Error updating blog, please try again")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, b)
}

func (h *BlogHandler) Like(w http.ResponseWriter, r *http.Request) {
	b, err := h.Blogs.Like(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteErr(w, r, "like blog", err, "Error liking the blog")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, b)
}

// pathParam returns the decoded value of a route parameter. chi matches on
// RawPath when it is set (e.g. an encoded "/"), leaving the param escaped;
// otherwise the param already comes from the decoded Path.
func pathParam(r *http.Request, key string) (string, error) {
	v := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return v, nil
	}
	return url.PathUnescape(v)
}
