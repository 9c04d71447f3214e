package assets

import "embed"

//go:embed arenas/*.tmx
var ArenaFS embed.FS

// DefaultArena is the arena loaded when no -arena flag is given.
const DefaultArena = "arenas/default.tmx"
