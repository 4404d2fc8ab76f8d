// Package cloud reads AWS infrastructure state by shelling out to the
// aws CLI. Credentials and region are ambient: whatever profile the
// CLI is configured with. All invocations are read-only describes.
package cloud
