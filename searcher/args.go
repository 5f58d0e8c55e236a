package searcher

import "minimax/meta"

// Defaults for Minimax

const DefaultDepth = meta.DEPTH
