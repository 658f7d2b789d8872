package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"okc/internal/config"
	"okc/internal/domain"
	"okc/internal/storage"
)

// CaseViewer browses test cases in an interactive TUI and lets the user
// toggle their lock state
type CaseViewer struct {
	config  *config.Config
	storage storage.Storage
}

// NewCaseViewer creates a new CaseViewer saving changes through st
func NewCaseViewer(cfg *config.Config, st storage.Storage) *CaseViewer {
	return &CaseViewer{
		config:  cfg,
		storage: st,
	}
}

// caseRef locates a case within an assignment
type caseRef struct {
	test  *domain.Test
	suite int
	index int
	c     domain.Case
}

func flattenCases(assignment *domain.Assignment) []caseRef {
	var refs []caseRef
	for _, test := range assignment.Tests {
		for s, suite := range test.Suites() {
			for i, c := range suite {
				refs = append(refs, caseRef{test: test, suite: s, index: i, c: c})
			}
		}
	}
	return refs
}

// View displays the cases of assignment. Lock changes are saved to path.
func (cv *CaseViewer) View(path string, assignment *domain.Assignment) error {
	refs := flattenCases(assignment)
	if len(refs) == 0 {
		color.Yellow("No test cases found")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	for _, ref := range refs {
		list.AddItem(listItemText(ref), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan).
		SetSecondaryTextColor(tview.Styles.SecondaryTextColor)

	// Stats header above the details (path, test, suite and case position)
	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetWordWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	// List on left (1/3), details on right (2/3)
	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	var saveErr error
	updateHeader := func() {
		headerText := fmt.Sprintf(" %s: %d cases, %d locked | ↑↓ navigate, [yellow]L[white] toggle lock, → details, ← back, Ctrl+C exit ",
			cv.title(path, assignment), assignment.CountCases(), assignment.CountLocked())
		if saveErr != nil {
			headerText += fmt.Sprintf("| [red]save failed: %v[white] ", saveErr)
		}
		headerView.SetText(headerText)
	}

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(refs) {
			statsView.SetText(formatCaseStats(path, refs[index]))
			detailsView.SetText(formatCaseDetails(refs[index]))
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp, tcell.KeyDown:
			return event
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'l' || event.Rune() == 'L' {
				index := list.GetCurrentItem()
				if index >= 0 && index < len(refs) {
					ref := refs[index]
					ref.c.SetLocked(!ref.c.IsLocked())
					list.SetItemText(index, listItemText(ref), "")
					saveErr = cv.storage.Save(path, assignment)
					updateHeader()
					updateDetails()
				}
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})

	updateHeader()
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return saveErr
}

func (cv *CaseViewer) title(path string, assignment *domain.Assignment) string {
	if assignment.Name != "" {
		return assignment.Name
	}
	return path
}

// listItemText formats a list entry using tview color tags
func listItemText(ref caseRef) string {
	lock := "[green]○"
	if ref.c.IsLocked() {
		lock = "[red]●"
	}
	return fmt.Sprintf("%s [yellow]%s[white] %d.%d", lock, tview.Escape(ref.test.Name()), ref.suite+1, ref.index+1)
}

// formatCaseStats formats the stats header for a case
func formatCaseStats(path string, ref caseRef) string {
	return fmt.Sprintf("[cyan]path:[white] [yellow]%s[white]::[yellow]%s[white] [cyan]suite[white] %d [cyan]case[white] %d [cyan]type[white] %s\n",
		tview.Escape(path), tview.Escape(ref.test.Name()), ref.suite+1, ref.index+1, ref.c.Type())
}

// formatCaseDetails formats a case for display using tview color tags
func formatCaseDetails(ref caseRef) string {
	var builder strings.Builder

	if ref.c.IsLocked() {
		builder.WriteString("[red]● Locked[white]\n\n")
	} else {
		builder.WriteString("[green]○ Unlocked[white]\n\n")
	}

	builder.WriteString("[yellow]Input:[white]\n")
	builder.WriteString(tview.Escape(ref.c.Input()))
	builder.WriteString("\n\n")

	for i, out := range ref.c.Outputs() {
		fmt.Fprintf(&builder, "[yellow]Answer %d:[white] %s\n", i+1, tview.Escape(out.Answer))
		if out.IsMultipleChoice() {
			builder.WriteString("[cyan]Choices:[white]\n")
			for _, choice := range out.Choices {
				marker := "  "
				if choice == out.Answer {
					marker = "[green]✓[white] "
				}
				fmt.Fprintf(&builder, "  %s%s\n", marker, tview.Escape(choice))
			}
		}
		if out.Explanation != "" {
			fmt.Fprintf(&builder, "[gray]%s[white]\n", tview.Escape(out.Explanation))
		}
		builder.WriteString("\n")
	}

	if note := ref.test.Note; note != "" {
		fmt.Fprintf(&builder, "[cyan]Note:[white]\n%s\n", tview.Escape(note))
	}
	return builder.String()
}
