package server

import (
	"encoding/json"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/seedpacket/pkg/assets"
	"github.com/matzehuels/seedpacket/pkg/errors"
	"github.com/matzehuels/seedpacket/pkg/packet"
	"github.com/matzehuels/seedpacket/pkg/pipeline"
	"github.com/matzehuels/seedpacket/pkg/render"
)

// Form field names, shared by the HTML form and the JSON body.
const (
	fieldSeedName        = "seedName"
	fieldDate            = "date"
	fieldNotes           = "notes"
	fieldBackgroundImage = "backgroundImage"
)

// headerRenderID carries the pipeline run ID on packet responses.
const headerRenderID = "X-Render-ID"

type imagesResponse struct {
	Data []assets.Info `json:"data"`
}

type errorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	images, err := s.runner.Images(r.Context())
	if err != nil {
		// The form still works without the image list.
		s.logger.Warn("list images", "err", err)
	}
	data := indexData{
		DefaultSeedName: packet.DefaultSeedName,
		Today:           packet.Today(s.now()).Format(packet.DateLayout),
		Images:          images,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.index.Execute(w, data); err != nil {
		s.logger.Error("render index", "err", err)
	}
}

func (s *Server) handlePacket(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	in, err := readInput(r)
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "read request body"))
		return
	}
	if err := in.CheckMarkup(); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.runner.Execute(r.Context(), pipeline.Options{
		Input:  in,
		Now:    s.now(),
		Logger: s.logger.With("request_id", middleware.GetReqID(r.Context())),
	})
	if err != nil {
		if !errors.IsValidation(err) {
			s.logger.Error("render packet", "err", err)
		}
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", render.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+render.Filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(res.PDF)))
	w.Header().Set(headerRenderID, res.ID)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.PDF)
}

func (s *Server) handleImages(w http.ResponseWriter, r *http.Request) {
	images, err := s.runner.Images(r.Context())
	if err != nil {
		s.logger.Error("list images", "err", err)
		writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "list images"))
		return
	}
	if images == nil {
		images = []assets.Info{}
	}
	writeJSON(w, http.StatusOK, imagesResponse{Data: images})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// readInput decodes a JSON body or a form submission into an Input.
func readInput(r *http.Request) (packet.Input, error) {
	var in packet.Input
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if ct == "application/json" {
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		err := dec.Decode(&in)
		return in, err
	}

	if err := r.ParseForm(); err != nil {
		return in, err
	}
	in.SeedName = r.PostForm.Get(fieldSeedName)
	in.Date = r.PostForm.Get(fieldDate)
	in.Notes = r.PostForm.Get(fieldNotes)
	in.BackgroundImage = r.PostForm.Get(fieldBackgroundImage)
	return in, nil
}

// statusFor maps error codes to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, errors.ErrCodeImageNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	resp := errorResponse{Code: errors.GetCode(err), Message: errors.UserMessage(err)}
	if resp.Code == "" {
		resp.Code = errors.ErrCodeInternal
	}
	if status == http.StatusInternalServerError {
		resp.Message = http.StatusText(status)
	}
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)
	_ = enc.Encode(v)
}
