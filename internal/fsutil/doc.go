// Package fsutil copies directory trees and clears project directories while
// keeping a repository marker (.git) in place. Every failure is reported as a
// *FilesystemError naming the path or paths involved.
package fsutil
