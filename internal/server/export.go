package server

import (
	"io"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/joseph-ayodele/invoice-studio/constants"
	"github.com/joseph-ayodele/invoice-studio/internal/invoice"
	"github.com/joseph-ayodele/invoice-studio/internal/render"
)

// handleRender accepts a multipart form with the (possibly user-edited)
// record fields, a template id, an accent color, and an optional logo image,
// and responds with the rendered PDF as a download.
//
// Form fields: invoice_number, client_name, description, amount, currency,
// due_date, template, accent_color, logo (file).
func (s *Service) handleRender(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(constants.MaxLogoBytes + 1<<20); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid multipart form"})
		return
	}

	amount, err := strconv.ParseFloat(r.Form.Get("amount"), 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "amount must be a number"})
		return
	}

	rec := invoice.Record{
		InvoiceNumber: r.Form.Get("invoice_number"),
		ClientName:    r.Form.Get("client_name"),
		Description:   r.Form.Get("description"),
		Amount:        amount,
		Currency:      r.Form.Get("currency"),
		DueDate:       r.Form.Get("due_date"),
	}
	rec.ApplyDefaults(timeNow())
	if err := rec.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	tpl := r.Form.Get("template")
	if tpl == "" {
		tpl = constants.TemplateIDs[0]
	}
	template, err := render.ParseTemplate(tpl)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	accent := r.Form.Get("accent_color")
	if accent == "" {
		accent = constants.DefaultAccentColor
	}

	var logo *render.Logo
	if file, _, ferr := r.FormFile("logo"); ferr == nil {
		defer func() { _ = file.Close() }()
		data, rerr := io.ReadAll(io.LimitReader(file, constants.MaxLogoBytes+1))
		if rerr != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "could not read logo upload"})
			return
		}
		logo, err = render.NewLogo(data)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
	}

	pdf, err := s.renderer.Render(render.Request{
		Invoice:     rec,
		Logo:        logo,
		AccentColor: accent,
		Template:    template,
	})
	if err != nil {
		s.logger.Error("render.failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	filename := render.Filename(rec.ClientName)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	_, _ = w.Write(pdf)
}
