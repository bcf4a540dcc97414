package parse

import (
	"regexp"
	"strings"

	"github.com/musicionary/organice/model"
	"github.com/musicionary/organice/render"
)

var (
	tableSeparatorRe = regexp.MustCompile(`^\|[-+]*\|?$`)
	unorderedItemRe  = regexp.MustCompile(`^([-+]| \*)(?: \[([X -])\])? (.*)$`)
	orderedItemRe    = regexp.MustCompile(`^(\d+)([.)])(?: \[@(\d+)\])?(?: \[([X -])\])? (.*)$`)
)

// liftTable lifts a canonical pipe table starting at lines[i]. The run
// extends over consecutive "|"-prefixed lines; separator lines mark row
// boundaries. The lift succeeds only when re-rendering the table
// reproduces the consumed lines exactly, which requires aligned columns
// and a separator between every pair of adjacent rows. On failure the
// caller treats lines[i] as text and retries from the next line.
func liftTable(lines []string, i int) (*model.Table, int) {
	if !strings.HasPrefix(lines[i], "|") {
		return nil, 0
	}
	j := i
	for j < len(lines) && strings.HasPrefix(lines[j], "|") {
		j++
	}

	table := &model.Table{}
	for k := i; k < j; k++ {
		if tableSeparatorRe.MatchString(lines[k]) {
			continue
		}
		table.Rows = append(table.Rows, model.TableRow{Cells: splitTableRow(lines[k])})
	}
	if len(table.Rows) == 0 {
		return nil, 0
	}

	if render.NewTableRenderer().Render(table) != strings.Join(lines[i:j], "\n") {
		return nil, 0
	}
	return table, j - i
}

// splitTableRow splits one "| a | b |" line into cells. Cell text is
// stored trimmed, matching what the renderer emits.
func splitTableRow(line string) []model.TableCell {
	pieces := strings.Split(line, "|")
	pieces = pieces[1:]
	if len(pieces) > 0 && pieces[len(pieces)-1] == "" {
		pieces = pieces[:len(pieces)-1]
	}
	cells := make([]model.TableCell, len(pieces))
	for i, piece := range pieces {
		raw := strings.TrimSpace(piece)
		cells[i] = model.TableCell{Contents: parseInline(raw), RawContents: raw}
	}
	return cells
}

// listItemStart describes a parsed item bullet line.
type listItemStart struct {
	isOrdered   bool
	bullet      string
	terminator  string
	forceNumber int
	isCheckbox  bool
	checkbox    model.CheckboxState
	title       string
}

// matchListItem parses one candidate item line. The " *" bullet form
// carries its mandatory leading space so star items cannot collide with
// heading lines.
func matchListItem(line string) *listItemStart {
	if m := unorderedItemRe.FindStringSubmatch(line); m != nil {
		item := &listItemStart{bullet: strings.TrimSpace(m[1]), title: m[3]}
		item.applyCheckbox(m[2])
		return item
	}
	if m := orderedItemRe.FindStringSubmatch(line); m != nil {
		item := &listItemStart{isOrdered: true, terminator: m[2], title: m[5]}
		if m[3] != "" {
			item.forceNumber = atoi(m[3])
		}
		item.applyCheckbox(m[4])
		return item
	}
	return nil
}

func (item *listItemStart) applyCheckbox(mark string) {
	if mark == "" {
		return
	}
	item.isCheckbox = true
	switch mark {
	case "X":
		item.checkbox = model.CheckboxChecked
	case "-":
		item.checkbox = model.CheckboxPartial
	default:
		item.checkbox = model.CheckboxUnchecked
	}
}

// sameList reports whether item continues the run that started list:
// same orderedness and the same bullet or number terminator.
func sameList(list *model.List, item *listItemStart) bool {
	if item.isOrdered != list.IsOrdered {
		return false
	}
	if list.IsOrdered {
		return item.terminator == list.NumberTerminatorCharacter
	}
	return item.bullet == list.BulletCharacter
}

// liftList lifts a canonical list starting at lines[i]. The run extends
// over consecutive items of the same shape together with their indented
// continuation lines; blank lines join the run only when more indented
// content follows them. The lift succeeds only when re-rendering the
// list reproduces the consumed lines exactly, which pins numbering,
// checkbox glyphs and continuation indentation. On failure the caller
// treats lines[i] as text and retries from the next line.
func liftList(lines []string, i int) (*model.List, int) {
	first := matchListItem(lines[i])
	if first == nil {
		return nil, 0
	}

	list := &model.List{
		IsOrdered:                 first.isOrdered,
		BulletCharacter:           first.bullet,
		NumberTerminatorCharacter: first.terminator,
	}
	contentsIndent := "  "
	if !list.IsOrdered && list.BulletCharacter == "*" {
		contentsIndent = "   "
	}

	j := i
	for j < len(lines) {
		item := matchListItem(lines[j])
		if item == nil || !sameList(list, item) {
			break
		}
		k := j + 1
		for k < len(lines) {
			if lines[k] != "" && strings.HasPrefix(lines[k], contentsIndent) {
				k++
				continue
			}
			if lines[k] == "" {
				// Blank lines belong to the item only when indented
				// content resumes after them.
				m := k
				for m < len(lines) && lines[m] == "" {
					m++
				}
				if m < len(lines) && strings.HasPrefix(lines[m], contentsIndent) {
					k = m
					continue
				}
			}
			break
		}

		contents := make([]string, 0, k-j-1)
		for _, line := range lines[j+1 : k] {
			if line == "" {
				contents = append(contents, "")
			} else {
				contents = append(contents, line[len(contentsIndent):])
			}
		}
		list.Items = append(list.Items, &model.ListItem{
			TitleLine:     parseInline(item.title),
			Contents:      parseAttributed(strings.Join(contents, "\n"), true),
			IsCheckbox:    item.isCheckbox,
			CheckboxState: item.checkbox,
			ForceNumber:   item.forceNumber,
		})
		j = k
	}

	if render.NewListRenderer().Render(list) != strings.Join(lines[i:j], "\n") {
		return nil, 0
	}
	return list, j - i
}
