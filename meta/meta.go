// meta/meta.go
package meta

// MAX_TURNS caps the length of a game; a capped game is a draw.
const MAX_TURNS = 300

// MAX_REJECTIONS is how many rejected turns in a row a player may submit.
const MAX_REJECTIONS = 100

// GAMES is the default number of self-play games.
const GAMES = 30

// TEMPERATURE is the default temperature of the weighted player.
const TEMPERATURE = 0.5

// OUT_DIR is where self-play records are written.
const OUT_DIR = "experiments"
