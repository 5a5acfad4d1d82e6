// Package discovery locates the gnuplot executable and validates its version.
//
// Discovery searches in the following order:
//  1. Explicit path in Config.Executable (if provided)
//  2. The GNUPLOT environment variable
//  3. System PATH
//  4. Common installation directories (/usr/local/bin, /usr/bin, /opt/homebrew/bin)
//
// During discovery, the reported version is compared against MinimumVersion.
// Named data blocks need gnuplot 5.0, so an older binary only produces a
// warning: the channel still starts. Version checking can be skipped via
// Config.SkipVersionCheck or the GNUPLOT_GO_SKIP_VERSION_CHECK environment
// variable.
package discovery
