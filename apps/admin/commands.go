package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"

	"github.com/nkminh14/uniconsole/core"
	"github.com/nkminh14/uniconsole/core/dashboard"
	"github.com/nkminh14/uniconsole/core/listing"
)

func (cli *commandLine) newTabWriter() *tabwriter.Writer {
	return tabwriter.NewWriter(cli.out, 0, 0, 2, ' ', 0)
}

func (cli *commandLine) list(ctx context.Context, tbl table, q listing.Query) error {
	page, err := tbl.page(ctx, q)
	if err != nil {
		return err
	}

	w := cli.newTabWriter()
	titles := make([]string, 0, len(tbl.columns))
	for _, col := range tbl.columns {
		titles = append(titles, col.Title)
	}
	fmt.Fprintln(w, strings.Join(titles, "\t"))
	for _, row := range page.Items {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	if len(page.Items) == 0 {
		fmt.Fprintln(w, "Không có dữ liệu.")
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(cli.out, "Trang %d/%d - Tổng số: %d\n", page.Number, max(page.NumPages, 1), page.Total)
	return nil
}

func (cli *commandLine) deleteRecord(ctx context.Context, tbl table, id int, yes bool) error {
	if err := tbl.exists(ctx, id); err != nil {
		return err
	}

	if !yes {
		if !isTerminalFunc(int(os.Stdin.Fd())) {
			return errNoTerminal
		}
		fmt.Fprintf(cli.out, "Bạn có chắc chắn muốn xóa %s #%d không? [y/N]: ", tbl.noun, id)
		answer, err := readLineFunc()
		if err != nil {
			return errors.Wrap(err, "reading confirmation")
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes", "c", "có":
		default:
			return errNotConfirmed
		}
	}

	if err := tbl.delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "Đã xóa %s #%d.\n", tbl.noun, id)
	return nil
}

func (cli *commandLine) dashboard(ctx context.Context) error {
	sum, err := dashboard.Build(ctx, cli.svcs.DashboardSources())
	if err != nil {
		return errors.Wrap(err, "building dashboard")
	}
	w := cli.newTabWriter()

	c := sum.Counts
	fmt.Fprintln(w, "== Số lượng")
	for _, line := range []struct {
		label string
		n     int
	}{
		{"Sinh viên", c.Students},
		{"Giảng viên", c.Teachers},
		{"Lớp học", c.Classes},
		{"Khoa", c.Faculties},
		{"Môn học", c.Subjects},
		{"Điểm", c.Grades},
		{"Học phí", c.Tuitions},
	} {
		fmt.Fprintf(w, "%s\t%d\n", line.label, line.n)
	}

	fmt.Fprintln(w, "== Tình trạng học phí")
	for _, st := range sum.TuitionStatus {
		fmt.Fprintf(w, "%s\t%d\n", st.Label, st.Count)
	}
	if sum.OtherStatuses > 0 {
		fmt.Fprintf(w, "Khác\t%d\n", sum.OtherStatuses)
	}

	fmt.Fprintln(w, "== Sĩ số theo lớp")
	for _, cc := range sum.StudentsPerClass {
		fmt.Fprintf(w, "%s\t%d\n", cc.Label, cc.Count)
	}

	fmt.Fprintln(w, "== Điểm trung bình theo môn")
	for _, avg := range sum.SubjectAverages {
		fmt.Fprintf(w, "%s\t%.2f\t(%d)\n", avg.SubjectName, avg.Average, avg.Grades)
	}

	fmt.Fprintln(w, "== Phân bố điểm")
	for score, n := range sum.ScoreHistogram {
		fmt.Fprintf(w, "%d\t%d\t%s\n", score, n, strings.Repeat("#", n))
	}
	return w.Flush()
}

func (cli *commandLine) export(ctx context.Context, tables []table, path string) error {
	sheets := make([]core.Sheet, 0, len(tables))
	rows := 0
	for _, tbl := range tables {
		sheet, err := tbl.sheet(ctx, listing.Query{})
		if err != nil {
			return err
		}
		sheets = append(sheets, sheet)
		rows += len(sheet.Rows)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating export file")
	}
	if err := cli.exporter.Export(f, sheets...); err != nil {
		_ = f.Close()
		return errors.Wrap(err, "writing export")
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, "closing export file")
	}

	fmt.Fprintf(cli.out, "Đã xuất %d bản ghi ra %s.\n", rows, path)
	return nil
}
