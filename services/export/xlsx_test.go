package exportsvc

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/nkminh14/uniconsole/core"
)

func TestXLSX_Export(t *testing.T) {
	svc := NewXLSXService()
	var buf bytes.Buffer

	err := svc.Export(&buf,
		core.Sheet{
			Name:    "Sinh viên",
			Headers: []string{"Mã SV", "Tên", "Lớp"},
			Rows: [][]interface{}{
				{"SV001", "Nguyễn Văn An", "#1 - Cấu trúc dữ liệu"},
				{"SV002", "Trần Thị Bình", nil},
			},
		},
		core.Sheet{Name: "Sinh viên", Headers: []string{"Điểm", "Số tín chỉ", "Đạt"}, Rows: [][]interface{}{{7.5, int64(3), true}}},
	)
	require.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Sinh viên", "Sinh viên (2)"}, f.GetSheetList())

	rows, err := f.GetRows("Sinh viên")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Mã SV", "Tên", "Lớp"},
		{"SV001", "Nguyễn Văn An", "#1 - Cấu trúc dữ liệu"},
		{"SV002", "Trần Thị Bình"},
	}, rows)

	score, err := f.GetCellValue("Sinh viên (2)", "A2")
	require.NoError(t, err)
	assert.Equal(t, "7.5", score)

	rows, err = f.GetRows("Sinh viên (2)")
	require.NoError(t, err)
	assert.Equal(t, []string{"7.5", "3", "TRUE"}, rows[1])
}

func TestXLSX_Export_empty(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, NewXLSXService().Export(&buf))
}

func TestSheetName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Lớp học", want: "Lớp học"},
		{in: "Học phí 2026/2027", want: "Học phí 2026 2027"},
		{in: "[x]?", want: "(x)"},
		{in: "  ", want: "Sheet"},
		{in: strings.Repeat("a", 40), want: strings.Repeat("a", 31)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SheetName(tt.in), tt.in)
	}
}
