package echoconsole

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/nkminh14/uniconsole/core"
	"github.com/nkminh14/uniconsole/core/listing"
	"github.com/nkminh14/uniconsole/core/resource"
)

const reloadParam = "_reload"

type entityPage interface {
	register(g *echo.Group)
}

// formOf is the pointer to an entity form.
type formOf[T resource.Entity, F any] interface {
	*F
	resource.Payload[T]
	Validate(validate *validator.Validate, translator ut.Translator) error
}

// cellFunc renders one column of a record.
type cellFunc[T any] func(rec T) string

// crud serves the list, form, delete and export pages of one entity.
type crud[T resource.Entity, F any, PF formOf[T, F]] struct {
	s       *server
	slug    string // URL segment
	title   string // short name, e.g. "Sinh viên"
	heading string
	noun    string // used in messages, e.g. "sinh viên"
	svc     *resource.Service[T]

	blank      func() F
	fromRecord func(rec T) F
	// onEdit fixes the fields an edit may not change.
	onEdit func(f *F, orig T)
	// fields describes the form inputs, loading select options as needed.
	fields func(ctx context.Context, f *F, editing bool) ([]field, error)
	// reload refreshes dependent fields after a select asked for it.
	reload func(ctx context.Context, f *F) error
	// cells fetches the side tables of a page and returns the columns rendered from them.
	cells func(ctx context.Context) map[string]cellFunc[T]
}

func (p *crud[T, F, PF]) base() string {
	return "/" + p.slug
}

func (p *crud[T, F, PF]) register(g *echo.Group) {
	base := p.base()
	g.GET(base, p.list)
	g.GET(base+"/export.xlsx", p.export)
	g.GET(base+"/new", p.newForm)
	g.POST(base, p.create)
	g.GET(base+"/:id/edit", p.edit)
	g.POST(base+"/:id", p.update)
	g.POST(base+"/:id/delete", p.destroy)
}

// Handlers

func (p *crud[T, F, PF]) list(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	q := p.svc.CleanQuery(parseQuery(ctx))

	var (
		page  listing.Page[T]
		cells map[string]cellFunc[T]
	)
	var g errgroup.Group
	g.Go(func() (err error) {
		page, err = p.svc.Query(reqCtx, q)
		return err
	})
	g.Go(func() error {
		// side tables degrade to #id cells on their own
		cells = p.sideCells(reqCtx)
		return nil
	})
	listErr := g.Wait()

	view := listView{
		shell:       p.s.newShell(ctx, p.title, p.base()),
		Heading:     p.heading,
		Slug:        p.slug,
		Noun:        p.noun,
		SearchTypes: p.svc.SearchTypes(),
		Query:       q,
		Columns:     columnViews(p.base(), p.svc.Columns(), q),
		ColSpan:     len(p.svc.Columns()) + 1,
	}
	if listErr != nil {
		p.s.deps.Logger.Error("listing "+p.slug, listErr, contextPerson(ctx))
		view.Error = fmt.Sprintf("Không thể tải danh sách %s.", p.noun)
		page = listing.Paginate([]T{}, 1, q.PageSize)
	}

	confirm := fmt.Sprintf("Bạn có chắc chắn muốn xóa %s này không?", p.noun)
	for _, rec := range page.Items {
		view.Rows = append(view.Rows, rowView{
			ID:         rec.ID(),
			Cells:      p.row(rec, cells),
			EditHref:   fmt.Sprintf("%s/%d/edit", p.base(), rec.ID()),
			DeleteHref: fmt.Sprintf("%s/%d/delete", p.base(), rec.ID()),
			Confirm:    confirm,
		})
	}
	view.Total = page.Total
	view.Pages, view.Prev, view.Next = pageLinks(p.base(), q, page)

	eq := q
	eq.Page = 0
	view.ExportHref = queryHref(p.base()+"/export.xlsx", eq)

	return ctx.Render(http.StatusOK, "list", view)
}

// export writes the filtered and sorted collection, every page of it, as a spreadsheet.
func (p *crud[T, F, PF]) export(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	recs, err := p.svc.View(reqCtx, parseQuery(ctx))
	if err != nil {
		return errors.Wrapf(err, "exporting %s", p.slug)
	}
	sheet := exportSheet(p.title, p.svc.Columns(), recs, p.sideCells(reqCtx))

	exp := p.s.deps.Exporter
	resp := ctx.Response()
	resp.Header().Set(echo.HeaderContentType, exp.ContentType())
	resp.Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", p.slug+exp.Extension()))
	resp.WriteHeader(http.StatusOK)
	return errors.Wrap(exp.Export(resp, sheet), "writing export")
}

func (p *crud[T, F, PF]) newForm(ctx echo.Context) error {
	f := p.blank()
	return p.renderForm(ctx, http.StatusOK, &f, 0, nil, "")
}

func (p *crud[T, F, PF]) create(ctx echo.Context) error {
	f := p.blank()
	if err := ctx.Bind(&f); err != nil {
		return errors.Wrap(err, "binding form")
	}
	return p.submit(ctx, &f, 0)
}

func (p *crud[T, F, PF]) edit(ctx echo.Context) error {
	id, err := paramID(ctx)
	if err != nil {
		return err
	}
	orig, err := p.svc.Get(ctx.Request().Context(), id)
	if err != nil {
		return err
	}
	f := p.fromRecord(orig)
	return p.renderForm(ctx, http.StatusOK, &f, id, nil, "")
}

func (p *crud[T, F, PF]) update(ctx echo.Context) error {
	id, err := paramID(ctx)
	if err != nil {
		return err
	}
	orig, err := p.svc.Get(ctx.Request().Context(), id)
	if err != nil {
		return err
	}
	f := p.fromRecord(orig)
	if err := ctx.Bind(&f); err != nil {
		return errors.Wrap(err, "binding form")
	}
	if p.onEdit != nil {
		p.onEdit(&f, orig)
	}
	return p.submit(ctx, &f, id)
}

func (p *crud[T, F, PF]) destroy(ctx echo.Context) error {
	id, err := paramID(ctx)
	if err != nil {
		return err
	}
	if err := p.svc.Delete(ctx.Request().Context(), id); err != nil {
		p.s.deps.Logger.Error("deleting "+p.slug, err, contextPerson(ctx))
		msg := fmt.Sprintf("Lỗi khi xóa %s: %s", p.noun, core.ErrorMessage(err, "không thể kết nối máy chủ"))
		return ctx.Redirect(http.StatusSeeOther, withFlash(p.base(), msg, levelError))
	}
	return ctx.Redirect(http.StatusSeeOther, withFlash(p.base(), "Đã xóa "+p.noun+".", levelSuccess))
}

// submit validates f then saves it; id is 0 for a new record.
// An invalid form never reaches the backend.
func (p *crud[T, F, PF]) submit(ctx echo.Context, f *F, id int) error {
	reqCtx := ctx.Request().Context()

	if ctx.FormValue(reloadParam) != "" && p.reload != nil {
		if err := p.reload(reqCtx, f); err != nil {
			p.s.deps.Logger.Warn("reloading "+p.slug+" form", err)
		}
		return p.renderForm(ctx, http.StatusOK, f, id, nil, "")
	}

	pf := PF(f)
	if err := pf.Validate(p.s.deps.Validate, p.s.deps.Translator); err != nil {
		vErr, ok := errors.Cause(err).(*core.ValidationError)
		if !ok {
			return errors.Wrap(err, "validating form")
		}
		return p.renderForm(ctx, http.StatusUnprocessableEntity, f, id, vErr.Map(), "")
	}

	var err error
	if id == 0 {
		_, err = p.svc.Create(reqCtx, pf)
	} else {
		_, err = p.svc.Update(reqCtx, id, pf)
	}
	if err != nil {
		p.s.deps.Logger.Error("saving "+p.slug, err, contextPerson(ctx))
		msg := core.ErrorMessage(err, fmt.Sprintf("Lỗi khi lưu %s.", p.noun))
		return p.renderForm(ctx, saveErrorStatus(err), f, id, nil, msg)
	}

	msg := "Đã thêm " + p.noun + "."
	if id != 0 {
		msg = "Đã cập nhật " + p.noun + "."
	}
	return ctx.Redirect(http.StatusSeeOther, withFlash(p.base(), msg, levelSuccess))
}

func (p *crud[T, F, PF]) renderForm(ctx echo.Context, code int, f *F, id int, errs map[string]string, errMsg string) error {
	editing := id != 0
	view := formView{
		shell:   p.s.newShell(ctx, p.title, p.base()),
		Heading: "Thêm " + p.noun,
		Action:  p.base(),
		Cancel:  p.base(),
		Errors:  errs,
		Error:   errMsg,
	}
	if editing {
		view.Heading = "Sửa " + p.noun
		view.Action = fmt.Sprintf("%s/%d", p.base(), id)
	}

	fields, err := p.fields(ctx.Request().Context(), f, editing)
	if err != nil {
		p.s.deps.Logger.Warn("loading "+p.slug+" form options", err)
		view.Warning = "Không tải được đầy đủ dữ liệu liên quan, một số lựa chọn có thể bị thiếu."
	}
	view.Fields = fields
	return ctx.Render(code, "form", view)
}

// Helpers

func (p *crud[T, F, PF]) sideCells(ctx context.Context) map[string]cellFunc[T] {
	if p.cells == nil {
		return nil
	}
	return p.cells(ctx)
}

func (p *crud[T, F, PF]) row(rec T, cells map[string]cellFunc[T]) []string {
	cols := p.svc.Columns()
	row := make([]string, 0, len(cols))
	for _, col := range cols {
		if cell, ok := cells[col.Key]; ok {
			row = append(row, cell(rec))
			continue
		}
		row = append(row, listing.Text(rec.Field(col.Key)))
	}
	return row
}

func exportSheet[T listing.Record](name string, cols []listing.Column, recs []T, cells map[string]cellFunc[T]) core.Sheet {
	sheet := core.Sheet{Name: name, Headers: make([]string, 0, len(cols))}
	for _, col := range cols {
		sheet.Headers = append(sheet.Headers, col.Title)
	}
	for _, rec := range recs {
		row := make([]interface{}, 0, len(cols))
		for _, col := range cols {
			if cell, ok := cells[col.Key]; ok {
				row = append(row, cell(rec))
				continue
			}
			row = append(row, listing.Value(rec.Field(col.Key)))
		}
		sheet.Rows = append(sheet.Rows, row)
	}
	return sheet
}

func paramID(ctx echo.Context) (int, error) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || id <= 0 {
		return 0, errBadID
	}
	return id, nil
}

func saveErrorStatus(err error) int {
	cause := errors.Cause(err)
	if cause == core.ErrNotFound {
		return http.StatusNotFound
	}
	if apiErr, ok := cause.(*core.APIError); ok {
		return apiErr.StatusCode
	}
	return http.StatusBadGateway
}
