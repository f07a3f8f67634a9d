package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/harunnryd/skillmart/internal/catalog/domain"
	"github.com/harunnryd/skillmart/internal/catalog/repository"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
)

type TableFormatter struct {
	headerStyle  lipgloss.Style
	cellStyle    lipgloss.Style
	oddRowStyle  lipgloss.Style
	evenRowStyle lipgloss.Style
	borderStyle  lipgloss.Style
}

func NewTableFormatter() *TableFormatter {
	purple := lipgloss.Color("99")
	gray := lipgloss.Color("245")
	lightGray := lipgloss.Color("241")

	return &TableFormatter{
		headerStyle: lipgloss.NewStyle().
			Foreground(purple).
			Bold(true).
			Align(lipgloss.Center).
			Padding(0, 1),
		cellStyle: lipgloss.NewStyle().
			Padding(0, 1),
		oddRowStyle: lipgloss.NewStyle().
			Foreground(gray).
			Padding(0, 1),
		evenRowStyle: lipgloss.NewStyle().
			Foreground(lightGray).
			Padding(0, 1),
		borderStyle: lipgloss.NewStyle().
			Foreground(purple),
	}
}

func (f *TableFormatter) list(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(f.borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return f.headerStyle
			case row%2 == 0:
				return f.evenRowStyle
			default:
				return f.oddRowStyle
			}
		}).
		Headers(headers...)
}

func (f *TableFormatter) detail() *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(f.borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return f.headerStyle
			}
			return f.cellStyle
		})
}

func (f *TableFormatter) FormatSkills(skills []domain.Skill) (string, error) {
	if len(skills) == 0 {
		return "No skills found", nil
	}

	t := f.list("ID", "Name", "Category", "Price", "Rating", "Downloads", "Tags")
	for _, skill := range skills {
		t.Row(
			truncateString(skill.ID.String(), 24),
			truncateString(skill.Name, 28),
			skill.Category.String(),
			PriceLabel(skill),
			formatRating(skill.Rating),
			strconv.FormatInt(skill.Downloads, 10),
			truncateString(strings.Join(skill.Tags, ", "), 30),
		)
	}

	return t.String(), nil
}

func (f *TableFormatter) FormatSkill(skill domain.Skill) (string, error) {
	updated := skill.LastUpdated
	if ts := skill.UpdatedAt(); !ts.IsZero() {
		updated = ts.Format("2006-01-02")
	}

	t := f.detail()
	t.Row("ID", skill.ID.String())
	t.Row("Name", skill.Name)
	t.Row("Icon", skill.DisplayIcon())
	t.Row("Description", truncateString(skill.Description, 60))
	t.Row("Category", skill.Category.String())
	t.Row("Author", skill.Author)
	t.Row("Version", skill.Version)
	t.Row("Price", PriceLabel(skill))
	t.Row("Rating", formatRating(skill.Rating))
	t.Row("Downloads", strconv.FormatInt(skill.Downloads, 10))
	t.Row("Tags", strings.Join(skill.Tags, ", "))
	t.Row("Compatibility", strings.Join(skill.Compatibility, ", "))
	t.Row("Updated", updated)
	if skill.InstallURL != "" {
		t.Row("Install", skill.InstallURL)
	}

	return t.String(), nil
}

func (f *TableFormatter) FormatCategories(categories []domain.Category) (string, error) {
	if len(categories) == 0 {
		return "No categories found", nil
	}

	t := f.list("ID", "Icon", "Name", "Skills")
	for _, c := range categories {
		t.Row(c.ID.String(), c.Icon, c.Name, strconv.Itoa(c.Count))
	}
	return t.String(), nil
}

func (f *TableFormatter) FormatCategory(category domain.Category) (string, error) {
	t := f.detail()
	t.Row("ID", category.ID.String())
	t.Row("Name", category.Name)
	t.Row("Icon", category.Icon)
	t.Row("Skills", strconv.Itoa(category.Count))
	return t.String(), nil
}

func (f *TableFormatter) FormatDrift(drift []repository.CountDrift) (string, error) {
	if len(drift) == 0 {
		return "Category counts match the skill population", nil
	}

	t := f.list("ID", "Name", "Stored", "Actual", "Delta")
	for _, d := range drift {
		name := d.Name
		if !d.Known {
			name = "(missing category)"
		}
		t.Row(d.ID.String(), name, strconv.Itoa(d.Stored), strconv.Itoa(d.Actual), fmt.Sprintf("%+d", d.Delta()))
	}
	return t.String(), nil
}

func (f *TableFormatter) FormatStats(stats repository.Stats) (string, error) {
	t := f.detail()
	t.Row("Skills", strconv.Itoa(stats.Skills))
	t.Row("Categories", strconv.Itoa(stats.Categories))
	t.Row("Downloads", strconv.FormatInt(stats.TotalDownloads, 10))
	t.Row("Authors", strconv.Itoa(len(stats.Authors)))
	t.Row("Tags", truncateString(strings.Join(stats.Tags, ", "), 60))
	return t.String(), nil
}

func formatRating(r float64) string {
	return strconv.FormatFloat(r, 'f', 1, 64)
}

func truncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}
