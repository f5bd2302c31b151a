package api

import (
	"html/template"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/lehmann314159/flashdeck/internal/models"
	"github.com/lehmann314159/flashdeck/internal/services"
)

// WebHandler handles the server-rendered flashcard pages
type WebHandler struct {
	svc       *services.FlashcardService
	log       *zap.Logger
	templates map[string]*template.Template
}

// NewWebHandler creates a new WebHandler with parsed templates
func NewWebHandler(svc *services.FlashcardService, log *zap.Logger, templatesPath string) (*WebHandler, error) {
	funcMap := template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
		"subtract": func(a, b int) int {
			return a - b
		},
	}

	// Parse layout template first
	layoutPath := templatesPath + "/layout.html"
	layoutTmpl, err := template.New("layout.html").Funcs(funcMap).ParseFiles(layoutPath)
	if err != nil {
		return nil, err
	}

	// Each page template is parsed into its own clone of the layout
	pageTemplates := []string{
		"index.html",
	}

	templates := make(map[string]*template.Template)

	for _, page := range pageTemplates {
		tmpl, err := layoutTmpl.Clone()
		if err != nil {
			return nil, err
		}
		tmpl, err = tmpl.ParseFiles(templatesPath + "/" + page)
		if err != nil {
			return nil, err
		}
		templates[page] = tmpl
	}

	return &WebHandler{
		svc:       svc,
		log:       log,
		templates: templates,
	}, nil
}

// ListPageData contains everything the list view renders: the current
// page of cards, sticky form state, validation errors, filters,
// pagination, and study mode state.
type ListPageData struct {
	Title            string
	Flashcards       []*models.Flashcard
	EditingFlashcard *models.Flashcard
	Errors           []string
	Front            string
	Back             string
	Category         string
	Difficulty       int
	Search           string
	CategoryFilter   string
	CurrentPage      int
	TotalPages       int
	HasPreviousPage  bool
	HasNextPage      bool
	StudyMode        bool
	CurrentCardIndex int
}

// ListPage handles GET / - the flashcard list with search, category
// filter, pagination, sticky form values and validation errors carried
// in the query string.
func (h *WebHandler) ListPage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	search := q.Get("search")
	category := q.Get("category")
	page := parsePage(q.Get("page"))

	filter := models.FlashcardFilter{
		Search:   search,
		Category: category,
		Page:     page,
		PageSize: models.DefaultPageSize,
	}

	cards, err := h.svc.List(r.Context(), filter)
	if err != nil {
		h.serverError(w, "failed to list flashcards", err)
		return
	}

	total, err := h.svc.Count(r.Context(), filter)
	if err != nil {
		h.serverError(w, "failed to count flashcards", err)
		return
	}

	pg := services.NewPagination(total, models.DefaultPageSize, page)

	data := ListPageData{
		Title:            "Flashcard App",
		Flashcards:       cards,
		EditingFlashcard: nil,
		Errors:           q["errors"],
		Front:            q.Get("front"),
		Back:             q.Get("back"),
		Category:         q.Get("category"),
		Difficulty:       parseDifficulty(q.Get("difficulty")),
		Search:           search,
		CategoryFilter:   category,
		CurrentPage:      pg.CurrentPage,
		TotalPages:       pg.TotalPages,
		HasPreviousPage:  pg.HasPrevious,
		HasNextPage:      pg.HasNext,
		StudyMode:        false,
	}

	h.render(w, "index.html", data)
}

// CreateFlashcard handles POST /flashcards. Validation failures
// redirect back to the list carrying the messages and the submitted
// values so the form can be re-populated.
func (h *WebHandler) CreateFlashcard(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	input := formInput(r)

	if errs := services.ValidateFlashcard(input.Front, input.Back, input.Category); len(errs) > 0 {
		h.redirectWithErrors(w, r, errs, input)
		return
	}

	if _, err := h.svc.Create(r.Context(), input); err != nil {
		h.serverError(w, "failed to create flashcard", err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// UpdateFlashcard handles PUT /flashcards/{id}, usually reached through
// the method-override shim. Same validation contract as create.
func (h *WebHandler) UpdateFlashcard(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "Invalid flashcard ID", http.StatusBadRequest)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	input := formInput(r)

	if errs := services.ValidateFlashcard(input.Front, input.Back, input.Category); len(errs) > 0 {
		h.redirectWithErrors(w, r, errs, input)
		return
	}

	if _, err := h.svc.Update(r.Context(), id, input); err != nil {
		h.serverError(w, "failed to update flashcard", err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// DeleteFlashcard handles DELETE /flashcards/{id} and sends the user
// back to the page the request came from.
func (h *WebHandler) DeleteFlashcard(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "Invalid flashcard ID", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.serverError(w, "failed to delete flashcard", err)
		return
	}

	target := r.Referer()
	if target == "" {
		target = "/"
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// PrepareEdit handles POST /edit-flashcard. The editing card is built
// from the submitted values, not re-fetched, and the referring page's
// search/category/page survive through its query string.
func (h *WebHandler) PrepareEdit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	id, err := strconv.ParseInt(r.FormValue("flashcardId"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid flashcard ID", http.StatusBadRequest)
		return
	}

	search, category, page := refererListState(r.Referer())

	filter := models.FlashcardFilter{
		Search:   search,
		Category: category,
		Page:     page,
		PageSize: models.DefaultPageSize,
	}

	cards, err := h.svc.List(r.Context(), filter)
	if err != nil {
		h.serverError(w, "failed to list flashcards", err)
		return
	}

	total, err := h.svc.Count(r.Context(), filter)
	if err != nil {
		h.serverError(w, "failed to count flashcards", err)
		return
	}

	pg := services.NewPagination(total, models.DefaultPageSize, page)

	data := ListPageData{
		Title:      "Flashcard App",
		Flashcards: cards,
		EditingFlashcard: &models.Flashcard{
			ID:         id,
			Front:      r.FormValue("front"),
			Back:       r.FormValue("back"),
			Category:   r.FormValue("category"),
			Difficulty: parseDifficulty(r.FormValue("difficulty")),
		},
		Difficulty:      1,
		Search:          search,
		CategoryFilter:  category,
		CurrentPage:     pg.CurrentPage,
		TotalPages:      pg.TotalPages,
		HasPreviousPage: pg.HasPrevious,
		HasNextPage:     pg.HasNext,
		StudyMode:       false,
	}

	h.render(w, "index.html", data)
}

// studyDirection selects the navigation step for a study request
type studyDirection int

const (
	studyStart studyDirection = iota
	studyForward
	studyBackward
)

// StartStudy handles GET /study
func (h *WebHandler) StartStudy(w http.ResponseWriter, r *http.Request) {
	h.study(w, r, studyStart)
}

// StudyNext handles GET /study/next
func (h *WebHandler) StudyNext(w http.ResponseWriter, r *http.Request) {
	h.study(w, r, studyForward)
}

// StudyPrevious handles GET /study/previous
func (h *WebHandler) StudyPrevious(w http.ResponseWriter, r *http.Request) {
	h.study(w, r, studyBackward)
}

// study re-fetches the shuffled deck for the category and renders the
// card at the navigated index. An empty deck never reaches the
// navigator; the user is sent back to the list with an error instead.
func (h *WebHandler) study(w http.ResponseWriter, r *http.Request, dir studyDirection) {
	q := r.URL.Query()

	category := q.Get("category")
	if category == "" {
		category = models.AllCategories
	}

	deck, err := h.svc.StudyDeck(r.Context(), category)
	if err != nil {
		h.serverError(w, "failed to fetch study deck", err)
		return
	}

	if len(deck) == 0 {
		http.Redirect(w, r, "/?errors="+url.QueryEscape("No flashcards found to study"), http.StatusSeeOther)
		return
	}

	index := 0
	if v := q.Get("currentIndex"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 && n < len(deck) {
			index = n
		}
	}

	switch dir {
	case studyForward:
		index = services.NextCardIndex(len(deck), index, false)
	case studyBackward:
		index = services.NextCardIndex(len(deck), index, true)
	}

	data := ListPageData{
		Title:            "Study Mode",
		Flashcards:       deck,
		Difficulty:       1,
		CategoryFilter:   category,
		CurrentPage:      1,
		TotalPages:       1,
		StudyMode:        true,
		CurrentCardIndex: index,
	}

	h.render(w, "index.html", data)
}

// redirectWithErrors sends the user back to the list view with the
// validation messages and the submitted values in the query string.
func (h *WebHandler) redirectWithErrors(w http.ResponseWriter, r *http.Request, errs []string, input *models.FlashcardInput) {
	params := url.Values{}
	for _, e := range errs {
		params.Add("errors", e)
	}
	params.Set("front", input.Front)
	params.Set("back", input.Back)
	params.Set("category", input.Category)
	params.Set("difficulty", strconv.Itoa(input.Difficulty))

	http.Redirect(w, r, "/?"+params.Encode(), http.StatusSeeOther)
}

// render renders a full page with layout
func (h *WebHandler) render(w http.ResponseWriter, content string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	tmpl, ok := h.templates[content]
	if !ok {
		http.Error(w, "Template not found: "+content, http.StatusInternalServerError)
		return
	}

	err := tmpl.ExecuteTemplate(w, "layout.html", data)
	if err != nil {
		h.log.Error("template render failed", zap.String("template", content), zap.Error(err))
		http.Error(w, "Server Error", http.StatusInternalServerError)
	}
}

// serverError logs the store failure and answers with a generic 500,
// leaking no internal detail to the client.
func (h *WebHandler) serverError(w http.ResponseWriter, msg string, err error) {
	h.log.Error(msg, zap.Error(err))
	http.Error(w, "Server Error", http.StatusInternalServerError)
}

// formInput reads the flashcard fields from a parsed form
func formInput(r *http.Request) *models.FlashcardInput {
	return &models.FlashcardInput{
		Front:      r.FormValue("front"),
		Back:       r.FormValue("back"),
		Category:   r.FormValue("category"),
		Difficulty: parseDifficulty(r.FormValue("difficulty")),
	}
}

// parsePage parses a 1-based page number, defaulting to 1
func parsePage(s string) int {
	page, err := strconv.Atoi(s)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// parseDifficulty parses a difficulty value, defaulting to 1
func parseDifficulty(s string) int {
	d, err := strconv.Atoi(s)
	if err != nil || d < 1 {
		return 1
	}
	return d
}

// refererListState recovers search/category/page from the referring
// list URL so an edit keeps the user's place.
func refererListState(referer string) (search, category string, page int) {
	page = 1
	u, err := url.Parse(referer)
	if err != nil {
		return "", "", page
	}
	q := u.Query()
	return q.Get("search"), q.Get("category"), parsePage(q.Get("page"))
}
