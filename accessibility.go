package secretbind

import "fmt"

// Accessibility declares when a stored item may be retrieved relative to
// device lock state. The zero value defers to the backend's own default
// protection class.
//
// Enforcement is the backend's job: SystemStore maps these onto Keychain
// kSecAttrAccessible classes; backends without a protection-class notion
// accept and ignore the value.
type Accessibility int

const (
	// AccessibilityDefault leaves the protection class to the backend.
	AccessibilityDefault Accessibility = iota

	// AccessibleWhenUnlocked makes the item readable only while the
	// device is unlocked.
	AccessibleWhenUnlocked

	// AccessibleAfterFirstUnlock makes the item readable after the
	// first unlock following a restart, including while locked.
	AccessibleAfterFirstUnlock

	// AccessibleWhenUnlockedThisDeviceOnly is AccessibleWhenUnlocked
	// without migration to other devices or backups.
	AccessibleWhenUnlockedThisDeviceOnly

	// AccessibleAfterFirstUnlockThisDeviceOnly is
	// AccessibleAfterFirstUnlock without migration.
	AccessibleAfterFirstUnlockThisDeviceOnly

	// AccessibleWhenPasscodeSetThisDeviceOnly requires a device
	// passcode; the item is lost if the passcode is removed.
	AccessibleWhenPasscodeSetThisDeviceOnly
)

var accessibilityNames = map[Accessibility]string{
	AccessibilityDefault:                     "default",
	AccessibleWhenUnlocked:                   "when-unlocked",
	AccessibleAfterFirstUnlock:               "after-first-unlock",
	AccessibleWhenUnlockedThisDeviceOnly:     "when-unlocked-this-device-only",
	AccessibleAfterFirstUnlockThisDeviceOnly: "after-first-unlock-this-device-only",
	AccessibleWhenPasscodeSetThisDeviceOnly:  "when-passcode-set-this-device-only",
}

func (a Accessibility) String() string {
	if name, ok := accessibilityNames[a]; ok {
		return name
	}
	return fmt.Sprintf("accessibility(%d)", int(a))
}

// ParseAccessibility converts a policy name (as printed by String) back
// to its value. Used by the CLI and config file.
func ParseAccessibility(name string) (Accessibility, error) {
	for a, n := range accessibilityNames {
		if n == name {
			return a, nil
		}
	}
	return AccessibilityDefault, fmt.Errorf("unknown accessibility %q", name)
}
