// Package cli defines the Cobra root command for create-rolldown. It binds the
// flags, loads configuration, prints the banner and help screen, and hands
// the session to the create package. Failures are printed here and turned
// into the process exit status.
package cli
