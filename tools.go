//go:build tools

package tools

// pkg/device/mocks is generated by the mockery v3 binary from .mockery.yaml.
// Run: mockery (from the module root) after changing device.Device.
