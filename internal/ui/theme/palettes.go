package theme

// Default is the theme used when none is configured.
const Default = "dracula"

var dracula = Palette{
	PrimaryColor:             c("#7e57c2", "#bd93f9"),
	SecondaryColor:           c("#0097a7", "#8be9fd"),
	AccentColor:              c("#f9a825", "#f1fa8c"),
	ErrorColor:               c("#d32f2f", "#ff5555"),
	WarningColor:             c("#ef6c00", "#ffb86c"),
	SuccessColor:             c("#388e3c", "#50fa7b"),
	InfoColor:                c("#1976d2", "#8be9fd"),
	TextColor:                c("#212121", "#f8f8f2"),
	TextMutedColor:           c("#757575", "#6272a4"),
	BackgroundColor:          c("#ffffff", "#282a36"),
	BackgroundSecondaryColor: c("#e0e0e0", "#44475a"),
	BorderNormalColor:        c("#bdbdbd", "#6272a4"),
	BorderFocusedColor:       c("#7e57c2", "#bd93f9"),
}

var nord = Palette{
	PrimaryColor:             c("#5E81AC", "#88C0D0"),
	SecondaryColor:           c("#81A1C1", "#81A1C1"),
	AccentColor:              c("#8FBCBB", "#8FBCBB"),
	ErrorColor:               c("#BF616A", "#BF616A"),
	WarningColor:             c("#D08770", "#D08770"),
	SuccessColor:             c("#A3BE8C", "#A3BE8C"),
	InfoColor:                c("#5E81AC", "#88C0D0"),
	TextColor:                c("#2E3440", "#ECEFF4"),
	TextMutedColor:           c("#3B4252", "#8B95A7"),
	BackgroundColor:          c("#ECEFF4", "#2E3440"),
	BackgroundSecondaryColor: c("#E5E9F0", "#3B4252"),
	BorderNormalColor:        c("#4C566A", "#434C5E"),
	BorderFocusedColor:       c("#434C5E", "#4C566A"),
}

var solarized = Palette{
	PrimaryColor:             c("#268bd2", "#268bd2"),
	SecondaryColor:           c("#6c71c4", "#6c71c4"),
	AccentColor:              c("#2aa198", "#2aa198"),
	ErrorColor:               c("#dc322f", "#dc322f"),
	WarningColor:             c("#b58900", "#b58900"),
	SuccessColor:             c("#859900", "#859900"),
	InfoColor:                c("#cb4b16", "#cb4b16"),
	TextColor:                c("#657b83", "#839496"),
	TextMutedColor:           c("#93a1a1", "#586e75"),
	BackgroundColor:          c("#fdf6e3", "#002b36"),
	BackgroundSecondaryColor: c("#eee8d5", "#073642"),
	BorderNormalColor:        c("#eee8d5", "#073642"),
	BorderFocusedColor:       c("#93a1a1", "#586e75"),
}

var gruvbox = Palette{
	PrimaryColor:             c("#076678", "#83a598"),
	SecondaryColor:           c("#8f3f71", "#d3869b"),
	AccentColor:              c("#b57614", "#fabd2f"),
	ErrorColor:               c("#9d0006", "#fb4934"),
	WarningColor:             c("#af3a03", "#fe8019"),
	SuccessColor:             c("#79740e", "#b8bb26"),
	InfoColor:                c("#076678", "#83a598"),
	TextColor:                c("#3c3836", "#ebdbb2"),
	TextMutedColor:           c("#7c6f64", "#a89984"),
	BackgroundColor:          c("#fbf1c7", "#282828"),
	BackgroundSecondaryColor: c("#ebdbb2", "#504945"),
	BorderNormalColor:        c("#bdae93", "#504945"),
	BorderFocusedColor:       c("#076678", "#83a598"),
}

var tokyonight = Palette{
	PrimaryColor:             c("#2e7de9", "#82aaff"),
	SecondaryColor:           c("#9854f1", "#c099ff"),
	AccentColor:              c("#b15c00", "#ff966c"),
	ErrorColor:               c("#f52a65", "#ff757f"),
	WarningColor:             c("#8c6c3e", "#ffc777"),
	SuccessColor:             c("#587539", "#c3e88d"),
	InfoColor:                c("#0db9d7", "#7dcfff"),
	TextColor:                c("#3760bf", "#c8d3f5"),
	TextMutedColor:           c("#848cb5", "#636da6"),
	BackgroundColor:          c("#e1e2e7", "#222436"),
	BackgroundSecondaryColor: c("#c8c9ce", "#2f334d"),
	BorderNormalColor:        c("#a8aecb", "#3b4261"),
	BorderFocusedColor:       c("#2e7de9", "#82aaff"),
}

func init() {
	RegisterTheme(Default, dracula)
	RegisterTheme("nord", nord)
	RegisterTheme("solarized", solarized)
	RegisterTheme("gruvbox", gruvbox)
	RegisterTheme("tokyonight", tokyonight)
}
