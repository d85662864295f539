// Package config provides configuration structures and utilities for crashplot.
// It defines the input and output paths, chart appearance, renderer
// selection and summary output preferences.
package config
