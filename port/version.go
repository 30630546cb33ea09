package port

// Module identity.
const (
	VendorID   = 1000
	ModuleID   = 120
	InstanceID = 0

	SWMajorVersion = 1
	SWMinorVersion = 0
	SWPatchVersion = 0

	// Release of the port driver interface this module follows.
	ARMajorVersion = 4
	ARMinorVersion = 0
	ARPatchVersion = 3
)

// VersionInfo identifies the driver build.
type VersionInfo struct {
	VendorID       uint16
	ModuleID       uint16
	SWMajorVersion uint8
	SWMinorVersion uint8
	SWPatchVersion uint8
}

// GetVersionInfo fills info with the module identity.
func (d *Driver) GetVersionInfo(info *VersionInfo) error {
	if info == nil {
		return d.report(ServiceGetVersionInfo, CodeParamPointer)
	}
	*info = VersionInfo{
		VendorID:       VendorID,
		ModuleID:       ModuleID,
		SWMajorVersion: SWMajorVersion,
		SWMinorVersion: SWMinorVersion,
		SWPatchVersion: SWPatchVersion,
	}
	return nil
}
