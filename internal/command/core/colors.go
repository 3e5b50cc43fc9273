package core

// EmbedColor is the neutral card background used by the informational commands.
const EmbedColor = 0x2B2D31
