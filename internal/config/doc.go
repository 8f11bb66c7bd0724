// Package config holds the simulation parameters of the percolate CLI.
//
// Parameters come from three layers, later layers overriding earlier ones:
// built-in defaults (Default), an optional YAML file (Load), and command-line
// flags applied by the CLI. Validate and ValidateSweep report the first
// problem as one of the sentinel errors in errors.go.
package config
