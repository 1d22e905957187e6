// Package config loads calcpad settings.
//
// Sources are layered, later ones winning: built-in defaults, the JSON file
// (default $HOME/.calcpad/config.json, a missing file is fine), CALCPAD_*
// environment variables, and finally command-line flags applied by the
// caller.
package config
