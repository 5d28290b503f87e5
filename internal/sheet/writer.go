package sheet

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/IbrahimElshafey/WhatsAppParser/internal/chat"
)

// ResolveLink maps a message to a hyperlink target for its media, if any.
type ResolveLink func(m chat.Message) (string, bool)

const timestampFormat = "2006-01-02 15:04:05"

// WriteWorkbook renders one worksheet per group: a bold frozen header row,
// Date/Sender/Message columns, an optional Media column with hyperlinks, and
// a right-to-left sheet view where the group calls for it. resolve may be nil
// when no media directory is configured; the Media column is omitted then.
func WriteWorkbook(path string, groups []*Group, resolve ResolveLink) error {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	withMedia := resolve != nil
	first := -1
	for _, g := range groups {
		name := sheetName(g.Key)
		idx, err := f.NewSheet(name)
		if err != nil {
			return fmt.Errorf("sheet %s: %w", name, err)
		}
		if first == -1 {
			first = idx
		}
		if err := writeGroup(f, name, g, resolve, withMedia, headerStyle); err != nil {
			return fmt.Errorf("sheet %s: %w", name, err)
		}
	}

	if first != -1 {
		f.DeleteSheet("Sheet1")
		f.SetActiveSheet(first)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func writeGroup(f *excelize.File, name string, g *Group, resolve ResolveLink, withMedia bool, headerStyle int) error {
	headers := []string{"Date", "Sender", "Message"}
	if withMedia {
		headers = append(headers, "Media")
	}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(name, cell, h); err != nil {
			return err
		}
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(name, "A1", lastHeader, headerStyle); err != nil {
		return err
	}

	if err := f.SetPanes(name, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}

	if g.RTL {
		rtl := true
		if err := f.SetSheetView(name, 0, &excelize.ViewOptions{RightToLeft: &rtl}); err != nil {
			return err
		}
	}

	for i, m := range g.Messages {
		row := i + 2
		cells := []any{m.Timestamp.Format(timestampFormat), m.Sender, m.Body}
		for col, v := range cells {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(name, cell, v); err != nil {
				return err
			}
		}
		if !withMedia {
			continue
		}
		link, ok := resolve(m)
		cell, _ := excelize.CoordinatesToCellName(4, row)
		switch {
		case ok:
			if err := f.SetCellValue(name, cell, filepath.Base(link)); err != nil {
				return err
			}
			if err := f.SetCellHyperLink(name, cell, link, "External"); err != nil {
				return err
			}
		case m.Media == chat.MediaUnnamed:
			if err := f.SetCellValue(name, cell, "media (name unknown)"); err != nil {
				return err
			}
		}
	}

	f.SetColWidth(name, "A", "A", 19)
	f.SetColWidth(name, "B", "B", 22)
	f.SetColWidth(name, "C", "C", 70)
	if withMedia {
		f.SetColWidth(name, "D", "D", 30)
	}
	return nil
}

// sheetName makes a group key safe for Excel: at most 31 chars, none of the
// characters Excel forbids in sheet names.
func sheetName(key string) string {
	r := strings.NewReplacer(`\`, "-", `/`, "-", `?`, "-", `*`, "-", `[`, "-", `]`, "-", `:`, "-")
	name := r.Replace(key)
	if len(name) > 31 {
		name = name[:31]
	}
	if name == "" {
		name = "Chat"
	}
	return name
}
