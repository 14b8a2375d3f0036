// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

// BuiltinGroups returns the ten built-in command families in their
// merge order. Order matters: a later group overrides an earlier
// registration of the same name. The system group's "ss" shadowing the
// network group's "ss" is the one intentional override.
func BuiltinGroups() []Group {
	return []Group{
		{Name: "core", Build: coreGroup},
		{Name: "filesystem", Build: filesystemGroup},
		{Name: "network", Build: networkGroup},
		{Name: "resume", Build: resumeGroup},
		{Name: "audio", Build: audioGroup},
		{Name: "effects", Build: effectsGroup},
		{Name: "apps", Build: appsGroup},
		{Name: "system", Build: systemGroup},
		{Name: "vendor", Build: vendorGroup},
		{Name: "environment", Build: environmentGroup},
	}
}
