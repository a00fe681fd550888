// Package config provides configuration loading, merging, and validation
// facilities for the go-snake-bench server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env file (never overrides variables that are already set)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// The main entry point is [GetStructuredConfig]. Deployment secrets that may
// rotate while the process runs are read through [Secrets] at call time.
package config
