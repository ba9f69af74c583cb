package httpadapter

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"svw.info/dsudoku/internal/domain"
	"svw.info/dsudoku/internal/solver"
	"svw.info/dsudoku/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

// Routes mounts the JSON API.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/solve", h.handleSolve)
	r.Post("/validate", h.handleValidate)
	r.Post("/hint", h.handleHint)
	r.Post("/generate", h.handleGenerate)
	r.Get("/records", h.handleList)
	r.Get("/records/{id}", h.handleLoad)
	return r
}

type errResp struct {
	Error string `json:"error"`
}

func badRequest(w http.ResponseWriter, r *http.Request, msg string) {
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, errResp{Error: msg})
}

// ---- Solve ----

type solveReq struct {
	Grid     string `json:"grid"`
	Diagonal bool   `json:"diagonal,omitempty"`
	Save     bool   `json:"save,omitempty"`
}

type solveResp struct {
	Solution   string `json:"solution"`
	Nodes      int    `json:"nodes"`
	DurationMs int64  `json:"durationMs"`
	RecordID   string `json:"recordId,omitempty"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		badRequest(w, r, "invalid JSON: "+err.Error())
		return
	}
	b, err := domain.ParseGrid(req.Grid)
	if err != nil {
		badRequest(w, r, err.Error())
		return
	}
	out, tr, st, err := h.UC.Solve(r.Context(), b, req.Diagonal)
	if err != nil {
		if errors.Is(err, solver.ErrNoSolution) {
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, errResp{Error: err.Error()})
			return
		}
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, errResp{Error: err.Error()})
		return
	}
	resp := solveResp{
		Solution:   out.Grid(),
		Nodes:      st.Nodes,
		DurationMs: st.Duration.Milliseconds(),
	}
	if req.Save {
		rec := &domain.SolveRecord{
			Grid:       req.Grid,
			Diagonal:   req.Diagonal,
			Solution:   out.Grid(),
			Nodes:      st.Nodes,
			DurationMs: st.Duration.Milliseconds(),
			Trace:      tr.Frames(),
			CreatedAt:  time.Now().UnixNano(),
		}
		if err := h.UC.Save(r.Context(), rec); err != nil {
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, errResp{Error: "saving record: " + err.Error()})
			return
		}
		resp.RecordID = rec.ID
	}
	render.JSON(w, r, resp)
}

// ---- Validate ----

type validateReq struct {
	Grid     string `json:"grid"`
	Diagonal bool   `json:"diagonal,omitempty"`
}

type validateResp struct {
	OK        bool     `json:"ok"`
	Conflicts []string `json:"conflicts,omitempty"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req validateReq
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		badRequest(w, r, "invalid JSON: "+err.Error())
		return
	}
	b, err := domain.ParseGrid(req.Grid)
	if err != nil {
		badRequest(w, r, err.Error())
		return
	}
	ok, conflicts, err := h.UC.Validate(r.Context(), b, req.Diagonal)
	if err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, errResp{Error: err.Error()})
		return
	}
	resp := validateResp{OK: ok}
	for _, c := range conflicts {
		resp.Conflicts = append(resp.Conflicts, c.Label())
	}
	render.JSON(w, r, resp)
}

// ---- Hint ----

type hintReq struct {
	Grid     string `json:"grid"`
	Diagonal bool   `json:"diagonal,omitempty"`
	Max      string `json:"max,omitempty"`
}

type hintResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
}

func parseTechnique(s string) domain.Technique {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "elimination":
		return domain.Elimination
	case "only-choice":
		return domain.OnlyChoice
	default:
		return domain.NakedTwins
	}
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	var req hintReq
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		badRequest(w, r, "invalid JSON: "+err.Error())
		return
	}
	b, err := domain.ParseGrid(req.Grid)
	if err != nil {
		badRequest(w, r, err.Error())
		return
	}
	hint, found, err := h.UC.Hint(r.Context(), b, parseTechnique(req.Max), req.Diagonal)
	if err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, errResp{Error: err.Error()})
		return
	}
	render.JSON(w, r, hintResp{Found: found, Hint: hint})
}

// ---- Generate ----

type generateReq struct {
	Seed       int64  `json:"seed,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
	Diagonal   bool   `json:"diagonal,omitempty"`
}

func parseDifficulty(s string) domain.Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return domain.Easy
	case "hard":
		return domain.Hard
	case "expert":
		return domain.Expert
	default:
		return domain.Medium
	}
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateReq
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		badRequest(w, r, "invalid JSON: "+err.Error())
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	p, _, err := h.UC.Generate(r.Context(), seed, parseDifficulty(req.Difficulty), req.Diagonal)
	if err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, errResp{Error: err.Error()})
		return
	}
	render.JSON(w, r, p)
}

// ---- Records ----

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	metas, err := h.UC.List(r.Context())
	if err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, errResp{Error: err.Error()})
		return
	}
	if metas == nil {
		metas = []domain.RecordMeta{}
	}
	render.JSON(w, r, metas)
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	rec, err := h.UC.Load(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, errResp{Error: "record not found"})
			return
		}
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, errResp{Error: err.Error()})
		return
	}
	render.JSON(w, r, rec)
}
