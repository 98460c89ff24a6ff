// Package config loads the optional YAML configuration of the stub generator.
//
// Every field has a default, so the generator runs without a file. Relative
// paths are resolved against the repository root:
//
//	version: "1"
//	circuitpython_dir: circuitpython
//	generic_stub: stubs/board/__init__.pyi
//	output_dir: boards
//	site_url: https://circuitpython.org/boards/
//	metadata_order: none   # none | site_path | vid_pid
//	excluded_manufacturers:
//	  - Nadda-Reel Company LLC
package config
