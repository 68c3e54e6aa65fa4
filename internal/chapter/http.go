// Copyright (c) 2026 Max Ludden. All rights reserved.

/*
HTTP interface for the chapter archive.

# Routing Strategy

All endpoints live under /api/v1/chapters and are keyed by the chapter's
ordinal number, not its document ID — the number is the natural key the rest
of the tooling (CLI, export tree) speaks.

The handler translates between the web/JSON layer and the internal domain
[Service].
*/
package chapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/maxludden/supergene/internal/platform/apperr"
	requestutil "github.com/maxludden/supergene/internal/platform/request"
	"github.com/maxludden/supergene/internal/platform/respond"
	"github.com/maxludden/supergene/pkg/pagination"
)

// # Handler Implementation

// Handler implements the HTTP layer for chapter management.
type Handler struct {
	service *Service
}

// NewHandler constructs a new chapter [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for the /chapters subtree.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.ListChapters)
	router.Post("/", handler.CreateChapter)

	router.Route("/{number}", func(r chi.Router) {
		r.Get("/", handler.GetChapter)
		r.Put("/", handler.PutChapter)
		r.Patch("/", handler.PatchChapter)
		r.Delete("/", handler.DeleteChapter)
	})

	return router
}

// # Request Schemas

// chapterRequest defines the inbound JSON schema for create/replace calls.
type chapterRequest struct {
	Number       int      `json:"number"`
	Book         int      `json:"book"`
	Section      int      `json:"section"`
	Title        string   `json:"title"`
	URL          string   `json:"url"`
	Tags         []string `json:"tags"`
	Text         string   `json:"text"`
	HTML         string   `json:"html"`
	Markdown     string   `json:"markdown"`
	UnparsedText string   `json:"unparsed_text"`
	Status       string   `json:"status"`
}

// toChapter maps the request body onto a domain entity.
func (input *chapterRequest) toChapter() *Chapter {
	return &Chapter{
		Number:       input.Number,
		Book:         input.Book,
		Section:      input.Section,
		Title:        input.Title,
		URL:          input.URL,
		Tags:         input.Tags,
		Text:         input.Text,
		HTML:         input.HTML,
		Markdown:     input.Markdown,
		UnparsedText: input.UnparsedText,
		Status:       Status(input.Status),
	}
}

// patchChapterRequest defines the inbound JSON schema for partial updates.
// Pointer fields distinguish "absent" from "set to zero value".
type patchChapterRequest struct {
	Book     *int      `json:"book"`
	Section  *int      `json:"section"`
	Title    *string   `json:"title"`
	URL      *string   `json:"url"`
	Tags     *[]string `json:"tags"`
	Text     *string   `json:"text"`
	HTML     *string   `json:"html"`
	Markdown *string   `json:"markdown"`
	Status   *string   `json:"status"`
}

// # Chapter Retrieval

/*
GET /api/v1/chapters.

Description: Returns a paginated roster of chapters. When both 'from' and
'to' query parameters are present the endpoint switches to range mode and
returns every chapter in the inclusive interval, unpaginated.

Request:
  - book: int (filter by book ordinal)
  - status: string (fetched, parsed, exported)
  - dir: string (asc, desc)
  - from, to: int (inclusive range mode)
  - limit, page: int

Response:
  - 200: []Chapter with pagination meta (or plain list in range mode)
*/
func (handler *Handler) ListChapters(writer http.ResponseWriter, request *http.Request) {

	// Range mode: both bounds present
	from, hasFrom := requestutil.QueryInt(request, "from")
	to, hasTo := requestutil.QueryInt(request, "to")
	if hasFrom && hasTo {
		chapters, err := handler.service.GetRange(request.Context(), from, to)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.OK(writer, chapters)
		return
	}

	// Paginated list mode
	paginationParams := pagination.FromRequest(request)

	book, _ := requestutil.QueryInt(request, "book")
	filter := ListFilter{
		Book:    book,
		Status:  Status(request.URL.Query().Get("status")),
		SortDir: request.URL.Query().Get("dir"),
	}

	chapters, total, err := handler.service.ListChapters(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, chapters, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

/*
GET /api/v1/chapters/{number}.

Description: Returns the chapter with the given ordinal number.

Response:
  - 200: Chapter
  - 404: NOT_FOUND: no chapter has this number
*/
func (handler *Handler) GetChapter(writer http.ResponseWriter, request *http.Request) {
	number, err := requestutil.Number(request, "number")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	chapter, err := handler.service.GetChapter(request.Context(), number)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// The accessor layer treats a miss as an empty result; the HTTP surface
	// is where empty becomes 404.
	if chapter == nil {
		respond.Error(writer, request, apperr.NotFound("Chapter"))
		return
	}

	respond.OK(writer, chapter)
}

// # Chapter Creation & Replacement

/*
POST /api/v1/chapters.

Description: Creates a new chapter record.

Response:
  - 201: Chapter: Created chapter object
  - 400: VALIDATION_ERROR: Invalid payload
  - 409: CONFLICT: Chapter number already exists
*/
func (handler *Handler) CreateChapter(writer http.ResponseWriter, request *http.Request) {
	var input chapterRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	chapter := input.toChapter()
	if err := handler.service.CreateChapter(request.Context(), chapter); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, chapter)
}

/*
PUT /api/v1/chapters/{number}.

Description: Full replace with upsert semantics — the document is inserted
when the number is new and replaced when it already exists. The path
parameter is authoritative; any number in the body is ignored.

Response:
  - 200: Chapter: Stored chapter object
  - 400: VALIDATION_ERROR: Invalid payload
*/
func (handler *Handler) PutChapter(writer http.ResponseWriter, request *http.Request) {
	number, err := requestutil.Number(request, "number")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input chapterRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	chapter := input.toChapter()
	chapter.Number = number

	if err := handler.service.UpsertChapter(request.Context(), chapter); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, chapter)
}

/*
PATCH /api/v1/chapters/{number}.

Description: Partial metadata update. Only fields present in the body are
changed; absent fields keep their stored values.

Response:
  - 200: Chapter: Updated chapter object
  - 404: NOT_FOUND: no chapter has this number
*/
func (handler *Handler) PatchChapter(writer http.ResponseWriter, request *http.Request) {
	number, err := requestutil.Number(request, "number")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input patchChapterRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	chapter, err := handler.service.GetChapter(request.Context(), number)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	if chapter == nil {
		respond.Error(writer, request, apperr.NotFound("Chapter"))
		return
	}

	applyPatch(chapter, &input)

	if err := handler.service.UpdateChapter(request.Context(), chapter); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, chapter)
}

/*
DELETE /api/v1/chapters/{number}.

Description: Physically removes a chapter. This is the only path by which a
chapter leaves the archive.

Response:
  - 204: Removed
  - 404: NOT_FOUND: no chapter has this number
*/
func (handler *Handler) DeleteChapter(writer http.ResponseWriter, request *http.Request) {
	number, err := requestutil.Number(request, "number")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteChapter(request.Context(), number); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// applyPatch copies the present fields of a partial update onto the entity.
func applyPatch(chapter *Chapter, input *patchChapterRequest) {
	if input.Book != nil {
		chapter.Book = *input.Book
	}
	if input.Section != nil {
		chapter.Section = *input.Section
	}
	if input.Title != nil {
		chapter.Title = *input.Title
		// A renamed chapter gets a fresh slug.
		chapter.Slug = ""
	}
	if input.URL != nil {
		chapter.URL = *input.URL
	}
	if input.Tags != nil {
		chapter.Tags = *input.Tags
	}
	if input.Text != nil {
		chapter.Text = *input.Text
	}
	if input.HTML != nil {
		chapter.HTML = *input.HTML
	}
	if input.Markdown != nil {
		chapter.Markdown = *input.Markdown
	}
	if input.Status != nil {
		chapter.Status = Status(*input.Status)
	}
}
