// Package runner executes package-manager commands inside a scaffolded
// project. ExecRunner spawns real child processes with inherited stdio, while
// DryRunner records the commands it would have run.
package runner
