package icon

// Icon identifies a UI symbol in the global registry.
type Icon int

const (
	Success Icon = iota + 1
	Fail
	Search
	Copy
	Link
	History
	Book
	Lua
	Progress
	Mark
)

var icons = map[Icon]*iconDef{
	Success: {
		emoji:   "✅",
		nerd:    "",
		plain:   "[ok]",
		kaomoji: "(￣ー￣)ｂ",
		squares: "■",
	},
	Fail: {
		emoji:   "❌",
		nerd:    "",
		plain:   "[x]",
		kaomoji: "(╯°□°)╯",
		squares: "□",
	},
	Search: {
		emoji:   "🔍",
		nerd:    "",
		plain:   "[?]",
		kaomoji: "(・・ )?",
		squares: "▣",
	},
	Copy: {
		emoji:   "📋",
		nerd:    "",
		plain:   "[c]",
		kaomoji: "(・∀・)つ",
		squares: "▤",
	},
	Link: {
		emoji:   "🔗",
		nerd:    "",
		plain:   "[~]",
		kaomoji: "(つ・・)つ",
		squares: "▥",
	},
	History: {
		emoji:   "🕘",
		nerd:    "",
		plain:   "[h]",
		kaomoji: "(－ω－) zzZ",
		squares: "▨",
	},
	Book: {
		emoji:   "📖",
		nerd:    "",
		plain:   "[b]",
		kaomoji: "φ(．．)",
		squares: "▦",
	},
	Lua: {
		emoji:   "🌙",
		nerd:    "",
		plain:   "[lua]",
		kaomoji: "(月)",
		squares: "◪",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "...",
		kaomoji: "(｡･ω･｡)",
		squares: "◌",
	},
	Mark: {
		emoji:   "🔖",
		nerd:    "",
		plain:   "[*]",
		kaomoji: "(￣ω￣)",
		squares: "◆",
	},
}
