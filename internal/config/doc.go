// Package config loads the crux run manifest.
//
// The manifest is a small YAML file naming the workspace manifest, the
// library target, and optional marker-trait overrides for root discovery.
package config
