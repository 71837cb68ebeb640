// Package updater checks GitHub Releases for newer CLI versions. A
// daily-cached version check powers the startup banner that points users at
// the release page when an upgrade is available.
package updater
