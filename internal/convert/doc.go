// Package convert drives a full wallpaper conversion: metadata extraction,
// schedule translation, container splitting, and the final builder run.
//
// The pipeline is strictly sequential. Each run works inside a scoped
// temporary workspace that holds the split images, the schedule description,
// and the built artifact; the workspace is removed on every exit path. The
// external tools are reached through the Splitter and Builder interfaces so
// tests can substitute fakes without touching the translation logic.
package convert
