package weba

import "context"

// Document structure elements

func Html(ctx context.Context, args ...any) *Node     { return El(ctx, "html", args...) }
func Head(ctx context.Context, args ...any) *Node     { return El(ctx, "head", args...) }
func Body(ctx context.Context, args ...any) *Node     { return El(ctx, "body", args...) }
func Title(ctx context.Context, args ...any) *Node    { return El(ctx, "title", args...) }
func Meta(ctx context.Context, args ...any) *Node     { return El(ctx, "meta", args...) }
func Link(ctx context.Context, args ...any) *Node     { return El(ctx, "link", args...) }
func Base(ctx context.Context, args ...any) *Node     { return El(ctx, "base", args...) }
func Script(ctx context.Context, args ...any) *Node   { return El(ctx, "script", args...) }
func Style(ctx context.Context, args ...any) *Node    { return El(ctx, "style", args...) }
func Noscript(ctx context.Context, args ...any) *Node { return El(ctx, "noscript", args...) }
func Template(ctx context.Context, args ...any) *Node { return El(ctx, "template", args...) }

// Sectioning elements

func Header(ctx context.Context, args ...any) *Node  { return El(ctx, "header", args...) }
func Footer(ctx context.Context, args ...any) *Node  { return El(ctx, "footer", args...) }
func Main(ctx context.Context, args ...any) *Node    { return El(ctx, "main", args...) }
func Nav(ctx context.Context, args ...any) *Node     { return El(ctx, "nav", args...) }
func Section(ctx context.Context, args ...any) *Node { return El(ctx, "section", args...) }
func Article(ctx context.Context, args ...any) *Node { return El(ctx, "article", args...) }
func Aside(ctx context.Context, args ...any) *Node   { return El(ctx, "aside", args...) }
func H1(ctx context.Context, args ...any) *Node      { return El(ctx, "h1", args...) }
func H2(ctx context.Context, args ...any) *Node      { return El(ctx, "h2", args...) }
func H3(ctx context.Context, args ...any) *Node      { return El(ctx, "h3", args...) }
func H4(ctx context.Context, args ...any) *Node      { return El(ctx, "h4", args...) }
func H5(ctx context.Context, args ...any) *Node      { return El(ctx, "h5", args...) }
func H6(ctx context.Context, args ...any) *Node      { return El(ctx, "h6", args...) }

// Text content elements

func Div(ctx context.Context, args ...any) *Node        { return El(ctx, "div", args...) }
func P(ctx context.Context, args ...any) *Node          { return El(ctx, "p", args...) }
func Span(ctx context.Context, args ...any) *Node       { return El(ctx, "span", args...) }
func Pre(ctx context.Context, args ...any) *Node        { return El(ctx, "pre", args...) }
func Blockquote(ctx context.Context, args ...any) *Node { return El(ctx, "blockquote", args...) }
func Ul(ctx context.Context, args ...any) *Node         { return El(ctx, "ul", args...) }
func Ol(ctx context.Context, args ...any) *Node         { return El(ctx, "ol", args...) }
func Li(ctx context.Context, args ...any) *Node         { return El(ctx, "li", args...) }
func Dl(ctx context.Context, args ...any) *Node         { return El(ctx, "dl", args...) }
func Dt(ctx context.Context, args ...any) *Node         { return El(ctx, "dt", args...) }
func Dd(ctx context.Context, args ...any) *Node         { return El(ctx, "dd", args...) }
func Hr(ctx context.Context, args ...any) *Node         { return El(ctx, "hr", args...) }
func Br(ctx context.Context, args ...any) *Node         { return El(ctx, "br", args...) }
func Figure(ctx context.Context, args ...any) *Node     { return El(ctx, "figure", args...) }
func Figcaption(ctx context.Context, args ...any) *Node { return El(ctx, "figcaption", args...) }

// Inline text elements

func A(ctx context.Context, args ...any) *Node      { return El(ctx, "a", args...) }
func Strong(ctx context.Context, args ...any) *Node { return El(ctx, "strong", args...) }
func Em(ctx context.Context, args ...any) *Node     { return El(ctx, "em", args...) }
func Small(ctx context.Context, args ...any) *Node  { return El(ctx, "small", args...) }
func Code(ctx context.Context, args ...any) *Node   { return El(ctx, "code", args...) }
func B(ctx context.Context, args ...any) *Node      { return El(ctx, "b", args...) }
func I(ctx context.Context, args ...any) *Node      { return El(ctx, "i", args...) }
func U(ctx context.Context, args ...any) *Node      { return El(ctx, "u", args...) }
func S(ctx context.Context, args ...any) *Node      { return El(ctx, "s", args...) }
func Mark(ctx context.Context, args ...any) *Node   { return El(ctx, "mark", args...) }
func Sub(ctx context.Context, args ...any) *Node    { return El(ctx, "sub", args...) }
func Sup(ctx context.Context, args ...any) *Node    { return El(ctx, "sup", args...) }
func Time(ctx context.Context, args ...any) *Node   { return El(ctx, "time", args...) }
func Abbr(ctx context.Context, args ...any) *Node   { return El(ctx, "abbr", args...) }
func Kbd(ctx context.Context, args ...any) *Node    { return El(ctx, "kbd", args...) }

// Media elements

func Img(ctx context.Context, args ...any) *Node     { return El(ctx, "img", args...) }
func Picture(ctx context.Context, args ...any) *Node { return El(ctx, "picture", args...) }
func Source(ctx context.Context, args ...any) *Node  { return El(ctx, "source", args...) }
func Video(ctx context.Context, args ...any) *Node   { return El(ctx, "video", args...) }
func Audio(ctx context.Context, args ...any) *Node   { return El(ctx, "audio", args...) }
func Svg(ctx context.Context, args ...any) *Node     { return El(ctx, "svg", args...) }
func Canvas(ctx context.Context, args ...any) *Node  { return El(ctx, "canvas", args...) }
func Iframe(ctx context.Context, args ...any) *Node  { return El(ctx, "iframe", args...) }

// Table elements

func Table(ctx context.Context, args ...any) *Node    { return El(ctx, "table", args...) }
func Caption(ctx context.Context, args ...any) *Node  { return El(ctx, "caption", args...) }
func Thead(ctx context.Context, args ...any) *Node    { return El(ctx, "thead", args...) }
func Tbody(ctx context.Context, args ...any) *Node    { return El(ctx, "tbody", args...) }
func Tfoot(ctx context.Context, args ...any) *Node    { return El(ctx, "tfoot", args...) }
func Tr(ctx context.Context, args ...any) *Node       { return El(ctx, "tr", args...) }
func Th(ctx context.Context, args ...any) *Node       { return El(ctx, "th", args...) }
func Td(ctx context.Context, args ...any) *Node       { return El(ctx, "td", args...) }
func Colgroup(ctx context.Context, args ...any) *Node { return El(ctx, "colgroup", args...) }
func Col(ctx context.Context, args ...any) *Node      { return El(ctx, "col", args...) }

// Form elements

func Form(ctx context.Context, args ...any) *Node     { return El(ctx, "form", args...) }
func Label(ctx context.Context, args ...any) *Node    { return El(ctx, "label", args...) }
func Input(ctx context.Context, args ...any) *Node    { return El(ctx, "input", args...) }
func Button(ctx context.Context, args ...any) *Node   { return El(ctx, "button", args...) }
func Select(ctx context.Context, args ...any) *Node   { return El(ctx, "select", args...) }
func OptionEl(ctx context.Context, args ...any) *Node { return El(ctx, "option", args...) }
func Optgroup(ctx context.Context, args ...any) *Node { return El(ctx, "optgroup", args...) }
func Textarea(ctx context.Context, args ...any) *Node { return El(ctx, "textarea", args...) }
func Fieldset(ctx context.Context, args ...any) *Node { return El(ctx, "fieldset", args...) }
func Legend(ctx context.Context, args ...any) *Node   { return El(ctx, "legend", args...) }
func Output(ctx context.Context, args ...any) *Node   { return El(ctx, "output", args...) }
func Progress(ctx context.Context, args ...any) *Node { return El(ctx, "progress", args...) }
func Meter(ctx context.Context, args ...any) *Node    { return El(ctx, "meter", args...) }
func Datalist(ctx context.Context, args ...any) *Node { return El(ctx, "datalist", args...) }

// Interactive elements

func Details(ctx context.Context, args ...any) *Node { return El(ctx, "details", args...) }
func Summary(ctx context.Context, args ...any) *Node { return El(ctx, "summary", args...) }
func Dialog(ctx context.Context, args ...any) *Node  { return El(ctx, "dialog", args...) }
