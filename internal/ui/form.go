package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tabgroup/internal/config"
	"tabgroup/internal/element"
	"tabgroup/internal/tabgroup"
	"tabgroup/internal/ui/textutil"
)

// Element tags and attributes used to build form trees.
const (
	TagForm    = "form"
	TagSection = "fieldset"
	TagInput   = "input"
	AttrLabel  = "label"
)

const (
	labelWidth = 14
	inputWidth = 28
)

type field struct {
	node  *element.Node
	input textinput.Model
	label string
	line  int // row within the rendered form
}

// FormView renders one config form as an element tree with a text input
// per field. The tree root is what the focus controller scans.
type FormView struct {
	Title string

	root     *element.Node
	sections []*element.Node
	fields   []*field
	byNode   map[*element.Node]*field

	// positions maps group members to their position, refreshed by SetGroup.
	positions map[*element.Node]int
	active    tabgroup.Position
}

var _ View = (*FormView)(nil)

// NewFormView builds the element tree for f. Fields are focusable input
// nodes; a non-empty TabIndex becomes the node's tabindex attribute.
func NewFormView(f config.Form) *FormView {
	v := &FormView{
		Title:  f.Title,
		root:   element.NewNode(TagForm),
		byNode: make(map[*element.Node]*field),
		active: tabgroup.None,
	}
	line := 0
	for _, s := range f.Sections {
		sec := element.NewNode(TagSection, element.Attr{Name: AttrLabel, Value: s.Title})
		v.root.Append(sec)
		v.sections = append(v.sections, sec)
		line++ // section heading
		for _, fd := range s.Fields {
			n := element.NewNode(TagInput, element.Attr{Name: AttrLabel, Value: fd.Label})
			n.Focusable = true
			if fd.TabIndex != "" {
				n.SetAttr(tabgroup.OrderAttr, fd.TabIndex)
			}
			sec.Append(n)

			in := textinput.New()
			in.Placeholder = fd.Placeholder
			in.Prompt = ""
			in.Width = inputWidth

			fl := &field{node: n, input: in, label: fd.Label, line: line}
			v.fields = append(v.fields, fl)
			v.byNode[n] = fl
			line++
		}
		line++ // blank line after section
	}
	return v
}

// Root returns the form's root node.
func (v *FormView) Root() *element.Node {
	return v.root
}

// Fields returns the field nodes in document order.
func (v *FormView) Fields() []*element.Node {
	out := make([]*element.Node, len(v.fields))
	for i, f := range v.fields {
		out[i] = f.node
	}
	return out
}

// FieldByLabel returns the node of the first field with the given label.
func (v *FormView) FieldByLabel(label string) *element.Node {
	for _, f := range v.fields {
		if f.label == label {
			return f.node
		}
	}
	return nil
}

// FieldAt returns the field rendered on row y of the form, or nil.
func (v *FormView) FieldAt(y int) *element.Node {
	for _, f := range v.fields {
		if f.line == y {
			return f.node
		}
	}
	return nil
}

// Value returns the text typed into the field for n.
func (v *FormView) Value(n *element.Node) string {
	if f, ok := v.byNode[n]; ok {
		return f.input.Value()
	}
	return ""
}

// StripOrder removes the ordering attribute from every field, which leaves
// the next scan with an empty group.
func (v *FormView) StripOrder() {
	for _, f := range v.fields {
		f.node.RemoveAttr(tabgroup.OrderAttr)
	}
}

// SetGroup records the scanned group and active position for rendering.
func (v *FormView) SetGroup(group []*element.Node, active tabgroup.Position) {
	v.positions = make(map[*element.Node]int, len(group))
	for i, n := range group {
		v.positions[n] = i
	}
	v.active = active
}

// Sync focuses the text input of the focused node and blurs the others.
func (v *FormView) Sync(focused *element.Node) tea.Cmd {
	var cmds []tea.Cmd
	for _, f := range v.fields {
		if f.node == focused {
			if !f.input.Focused() {
				cmds = append(cmds, f.input.Focus())
			}
			continue
		}
		if f.input.Focused() {
			f.input.Blur()
		}
	}
	return tea.Batch(cmds...)
}

// Init implements View.
func (v *FormView) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View. Messages go to the focused input only.
func (v *FormView) Update(msg tea.Msg) (View, tea.Cmd) {
	for _, f := range v.fields {
		if f.input.Focused() {
			var cmd tea.Cmd
			f.input, cmd = f.input.Update(msg)
			return v, cmd
		}
	}
	return v, nil
}

// View implements View. Each field occupies the row recorded at build time.
func (v *FormView) View() string {
	var b strings.Builder
	next := 0
	for _, sec := range v.sections {
		title, _ := sec.Attr(AttrLabel)
		b.WriteString(Styles.Section.Render(title))
		b.WriteString("\n")
		for range sec.Children() {
			b.WriteString(v.renderField(v.fields[next]))
			b.WriteString("\n")
			next++
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (v *FormView) renderField(f *field) string {
	marker := "  "
	label := Styles.Label
	if f.input.Focused() {
		marker = Styles.Marker.Render("▸ ")
		label = Styles.LabelFocused
	}
	return fmt.Sprintf("%s%s %s %s",
		marker,
		label.Render(textutil.Fit(f.label, labelWidth)),
		f.input.View(),
		v.annotation(f.node),
	)
}

func (v *FormView) annotation(n *element.Node) string {
	raw, hasAttr := n.Attr(tabgroup.OrderAttr)
	pos, member := v.positions[n]
	switch {
	case member && tabgroup.Position(pos) == v.active:
		return Styles.Marker.Render(fmt.Sprintf("[%s] #%d active", raw, pos))
	case member:
		return Styles.Order.Render(fmt.Sprintf("[%s] #%d", raw, pos))
	case hasAttr:
		return Styles.Outside.Render(fmt.Sprintf("[%s] not in group", raw))
	default:
		return Styles.Outside.Render("unordered")
	}
}
