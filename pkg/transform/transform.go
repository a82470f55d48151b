package transform

import "strings"

// Func is a pure text transformation. Every catalog entry is one of these;
// none of them touch document metadata.
type Func func(string) string

// Scope is the fallback operand when no selection is active.
type Scope int

const (
	// ScopeDocument applies to the whole buffer when nothing is selected.
	ScopeDocument Scope = iota
	// ScopeLine applies to the current line when nothing is selected.
	ScopeLine
)

// DefaultTabWidth is used by the static catalog; the UI rebuilds
// width-sensitive entries from settings at dispatch time.
const DefaultTabWidth = 4

// Command is one entry in the transform catalog.
type Command struct {
	ID    string
	Name  string
	Scope Scope
	Fn    Func
}

// Catalog is the static table of transform commands, in menu order.
var Catalog = []Command{
	{ID: "case.upper", Name: "UPPERCASE", Scope: ScopeLine, Fn: Upper},
	{ID: "case.lower", Name: "lowercase", Scope: ScopeLine, Fn: Lower},
	{ID: "case.title", Name: "Title Case", Scope: ScopeLine, Fn: Title},
	{ID: "case.sentence", Name: "Sentence case", Scope: ScopeLine, Fn: Sentence},
	{ID: "case.swap", Name: "sWAP cASE", Scope: ScopeLine, Fn: SwapCase},
	{ID: "ident.snake", Name: "snake_case", Scope: ScopeLine, Fn: SnakeCase},
	{ID: "ident.camel", Name: "camelCase", Scope: ScopeLine, Fn: CamelCase},
	{ID: "ident.pascal", Name: "PascalCase", Scope: ScopeLine, Fn: PascalCase},
	{ID: "ident.kebab", Name: "kebab-case", Scope: ScopeLine, Fn: KebabCase},
	{ID: "ident.upper-snake", Name: "UPPER_SNAKE", Scope: ScopeLine, Fn: UpperSnakeCase},
	{ID: "ws.trim-leading", Name: "Trim Leading Whitespace", Scope: ScopeDocument, Fn: TrimLeading},
	{ID: "ws.trim-trailing", Name: "Trim Trailing Whitespace", Scope: ScopeDocument, Fn: TrimTrailing},
	{ID: "ws.trim-both", Name: "Trim Both Ends", Scope: ScopeDocument, Fn: TrimBoth},
	{ID: "ws.tabs-to-spaces", Name: "Tabs to Spaces", Scope: ScopeDocument, Fn: TabsToSpaces(DefaultTabWidth)},
	{ID: "ws.spaces-to-tabs", Name: "Spaces to Tabs", Scope: ScopeDocument, Fn: SpacesToTabs(DefaultTabWidth)},
	{ID: "ws.indent", Name: "Indent", Scope: ScopeDocument, Fn: Indent(DefaultTabWidth)},
	{ID: "ws.outdent", Name: "Outdent", Scope: ScopeDocument, Fn: Outdent(DefaultTabWidth)},
	{ID: "ws.collapse", Name: "Collapse Whitespace", Scope: ScopeDocument, Fn: CollapseWhitespace},
	{ID: "ws.strip-bom", Name: "Strip Leading BOM", Scope: ScopeDocument, Fn: StripBOM},
	{ID: "lines.comment", Name: "Toggle Comment", Scope: ScopeLine, Fn: ToggleComment},
	{ID: "lines.join", Name: "Join Lines", Scope: ScopeDocument, Fn: JoinLines},
	{ID: "lines.split-commas", Name: "Split by Commas", Scope: ScopeDocument, Fn: SplitCommas},
	{ID: "lines.sort-asc", Name: "Sort Lines Ascending", Scope: ScopeDocument, Fn: SortAscending},
	{ID: "lines.sort-desc", Name: "Sort Lines Descending", Scope: ScopeDocument, Fn: SortDescending},
	{ID: "lines.sort-length", Name: "Sort Lines by Length", Scope: ScopeDocument, Fn: SortByLength},
	{ID: "lines.reverse", Name: "Reverse Lines", Scope: ScopeDocument, Fn: ReverseLines},
	{ID: "lines.dedupe", Name: "Remove Duplicate Lines", Scope: ScopeDocument, Fn: DedupeLines},
	{ID: "lines.remove-blank", Name: "Remove Blank Lines", Scope: ScopeDocument, Fn: RemoveBlankLines},
	{ID: "lines.number", Name: "Number Lines", Scope: ScopeDocument, Fn: NumberLines},
	{ID: "lines.unnumber", Name: "Remove Line Numbers", Scope: ScopeDocument, Fn: UnnumberLines},
	{ID: "lines.align-assign", Name: "Align Assignments", Scope: ScopeDocument, Fn: AlignAssignments},
	{ID: "lines.bullets", Name: "Toggle Bullet List", Scope: ScopeDocument, Fn: ToggleBullets},
	{ID: "lines.numbered-list", Name: "Toggle Numbered List", Scope: ScopeDocument, Fn: ToggleNumberedList},
	{ID: "tokens.zero-pad", Name: "Zero-Pad Numbers", Scope: ScopeDocument, Fn: ZeroPadNumbers},
	{ID: "wrap.parens", Name: "Wrap in ( )", Scope: ScopeLine, Fn: Wrap("(", ")")},
	{ID: "wrap.brackets", Name: "Wrap in [ ]", Scope: ScopeLine, Fn: Wrap("[", "]")},
	{ID: "wrap.braces", Name: "Wrap in { }", Scope: ScopeLine, Fn: Wrap("{", "}")},
	{ID: "wrap.double-quotes", Name: "Wrap in \" \"", Scope: ScopeLine, Fn: Wrap(`"`, `"`)},
	{ID: "wrap.single-quotes", Name: "Wrap in ' '", Scope: ScopeLine, Fn: Wrap("'", "'")},
	{ID: "wrap.backticks", Name: "Wrap in ` `", Scope: ScopeLine, Fn: Wrap("`", "`")},
	{ID: "quotes.to-double", Name: "Single to Double Quotes", Scope: ScopeLine, Fn: QuotesToDouble},
	{ID: "quotes.to-single", Name: "Double to Single Quotes", Scope: ScopeLine, Fn: QuotesToSingle},
}

// Lookup finds a catalog entry by id.
func Lookup(id string) (Command, bool) {
	for _, cmd := range Catalog {
		if cmd.ID == id {
			return cmd, true
		}
	}
	return Command{}, false
}

// ApplyRange runs fn over content[start:end] and splices the result back.
// This is the only mechanism by which a transform reaches the buffer, so
// every command composes with selections the same way.
func ApplyRange(content string, start, end int, fn Func) string {
	if start < 0 {
		start = 0
	}
	if end > len(content) {
		end = len(content)
	}
	if start > end {
		start, end = end, start
	}
	return content[:start] + fn(content[start:end]) + content[end:]
}

// eachLine applies fn to every \n-separated line, preserving the line
// structure. Most catalog entries are built from this.
func eachLine(s string, fn func(string) string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = fn(line)
	}
	return strings.Join(lines, "\n")
}
