package entity

import (
	"errors"
	"fmt"
	"slices"
)

// ErrMissingTable is returned when a required lookup table is absent.
var ErrMissingTable = errors.New("missing lookup table")

// PrefixAlias maps a boolean parent to the stem its children share when the
// stem differs from the parent's own name.
type PrefixAlias struct {
	Parent string
	Prefix string
}

// ExplicitGroup is a parent whose children cannot be derived from naming.
// When DeriveFrom is set, a synthesized parent is true only if that sibling
// holds a non-empty sequence; otherwise a synthesized parent is false.
type ExplicitGroup struct {
	Parent     string
	Children   []string
	DeriveFrom string
}

// CompositeMember is one dependent key of a composite toggle with the value
// it resets to when the toggle is off.
type CompositeMember struct {
	Key     string
	Default Value
}

// CompositeGroup is a boolean key whose members are always emitted together.
// Category is where missing members get seeded on load.
type CompositeGroup struct {
	Key      string
	Category string
	Members  []CompositeMember
}

// ResetGroup lists children that revert to their original values when the
// parent is switched off. The parent flag itself is not emitted.
type ResetGroup struct {
	Parent   string
	Children []string
}

// Tables holds the fixed lookup tables the analyzer and serializer consume.
// A nil table is treated as missing.
type Tables struct {
	NonInteractiveKeys []string
	CustomEditorKeys   []string
	CustomOptionKeys   []string
	EscapeTextKeys     []string
	EscapeListFields   map[string][]string
	PrefixAliases      []PrefixAlias
	ExplicitGroups     []ExplicitGroup
	Composites         []CompositeGroup
	ResetOnDisable     []ResetGroup
}

// Validate reports the first missing table.
func (t *Tables) Validate() error {
	if t == nil {
		return fmt.Errorf("%w: tables", ErrMissingTable)
	}
	checks := []struct {
		name    string
		missing bool
	}{
		{"non_interactive_keys", t.NonInteractiveKeys == nil},
		{"custom_editor_keys", t.CustomEditorKeys == nil},
		{"custom_option_keys", t.CustomOptionKeys == nil},
		{"escape_text_keys", t.EscapeTextKeys == nil},
		{"escape_list_fields", t.EscapeListFields == nil},
		{"prefix_aliases", t.PrefixAliases == nil},
		{"explicit_groups", t.ExplicitGroups == nil},
		{"composites", t.Composites == nil},
		{"reset_on_disable", t.ResetOnDisable == nil},
	}
	for _, c := range checks {
		if c.missing {
			return fmt.Errorf("%w: %s", ErrMissingTable, c.name)
		}
	}
	return nil
}

// IsNonInteractive reports whether key is always written from the original.
func (t *Tables) IsNonInteractive(key string) bool {
	return slices.Contains(t.NonInteractiveKeys, key)
}

// IsCustomEditor reports whether key is edited by a structured editor.
func (t *Tables) IsCustomEditor(key string) bool {
	return slices.Contains(t.CustomEditorKeys, key)
}

// SupportsCustomOption reports whether key accepts a user-typed value.
func (t *Tables) SupportsCustomOption(key string) bool {
	return slices.Contains(t.CustomOptionKeys, key)
}

// Composite returns the composite group for key.
func (t *Tables) Composite(key string) (CompositeGroup, bool) {
	for _, g := range t.Composites {
		if g.Key == key {
			return g, true
		}
	}
	return CompositeGroup{}, false
}

// CompositeOwner returns the composite group that member belongs to.
func (t *Tables) CompositeOwner(member string) (CompositeGroup, bool) {
	for _, g := range t.Composites {
		for _, m := range g.Members {
			if m.Key == member {
				return g, true
			}
		}
	}
	return CompositeGroup{}, false
}

// ResetGroup returns the reset-on-disable group for parent.
func (t *Tables) ResetGroup(parent string) (ResetGroup, bool) {
	for _, g := range t.ResetOnDisable {
		if g.Parent == parent {
			return g, true
		}
	}
	return ResetGroup{}, false
}

// DefaultTables returns the built-in tables of the clone settings format.
func DefaultTables() *Tables {
	return &Tables{
		NonInteractiveKeys: []string{
			"addPermissions",
			"addProviders",
			"addReceivers",
			"addServices",
			"addActivities",
			"stringsProperties",
			"serialFormat",
		},
		CustomEditorKeys: []string{
			"webViewUrlDataFilterList",
			"overrideSharedPreferences",
			"customBuildProps",
			"webViewCookies",
			"webViewOverrideUrlLoadingList",
			"skipDialogsStrings",
			"bundleFilesDirectories",
			"bundleInternalFilesDirectories",
			"hostsBlocker",
			"bundleAppData",
			"deleteOnExit",
			"spoofGpsTrack",
		},
		CustomOptionKeys: []string{
			"changeAndroidId",
			"changeImei",
			"changeAndroidSerial",
			"changeWifiMacAddress",
			"changeBluetoothMacAddress",
			"changeImsi",
			"changeGoogleAdvertisingId",
			"changeGoogleServiceFrameworkId",
			"changeFacebookAttributionId",
			"changeAppSetId",
			"changeOpenId",
			"changeAmazonAdvertisingId",
			"changeHuaweiAdvertisingId",
			"changeLocale",
			"changeEthernetMacAddress",
		},
		EscapeTextKeys: []string{"customBuildPropsFile"},
		EscapeListFields: map[string][]string{
			"webViewUrlDataFilterList":      {"urlExpression", "urlReplacement", "dataExpression", "dataReplacement"},
			"webViewOverrideUrlLoadingList": {"urlExpression"},
		},
		PrefixAliases: []PrefixAlias{
			{Parent: "addSnow", Prefix: "snow"},
			{Parent: "pictureInPictureSupport", Prefix: "pictureInPicture"},
			{Parent: "buildsProps", Prefix: "buildProps"},
		},
		ExplicitGroups: []ExplicitGroup{
			{Parent: "hostsBlocker", Children: []string{
				"hostsBlockerBlockByDefault",
				"hostsBlockerShowNotification",
				"hostsBlockerUseFile",
				"hostsBlockerFileContent",
				"hostsBlockerAllowAllOtherHosts",
			}},
			{Parent: "bundleAppData", Children: []string{
				"bundleAppDataPath",
				"bundleAppDataPassword",
				"bundleAppDataEncryptCertificate",
				"restoreAppDataOnEveryStart",
			}},
			{
				Parent:     "deleteOnExit",
				Children:   []string{"deleteFilesDirectoriesOnExit", "securelyDeleteFilesDirectoriesOnExit"},
				DeriveFrom: "deleteFilesDirectoriesOnExit",
			},
			{Parent: "changeInstallUpdateTime", Children: []string{
				"customInstallUpdateTime",
				"randomizeUserCreationTime",
				"relativeInstallUpdateTime",
				"relativeInstallUpdateTimeUnit",
			}},
			{Parent: "randomizeBuildProps", Children: []string{
				"filterDevicesDatabase",
				"devicesDatabaseFilters",
				"devicesDatabaseUseAndroidVersion",
				"devicesDatabaseSdkVersions",
				"randomizeBuildPropsDeviceNamePrefix",
			}},
			{Parent: "spoofLocation", Children: []string{
				"spoofLocationLatitude",
				"spoofLocationLongitude",
				"spoofRandomLocation",
				"spoofLocationUseIpLocation",
				"spoofLocationApi",
				"spoofLocationCalculateBearing",
				"spoofLocationCompatibilityMode",
				"spoofLocationInterval",
				"spoofLocationShareLocationReceiver",
				"spoofLocationShowSpoofLocationNotification",
				"spoofLocationSimulatePositionalUncertainty",
				"favoriteLocationsShowDistance",
			}},
			{Parent: "webViewPrivacyOptions", Children: []string{
				"webViewDisableWebRtc",
				"webViewDisableWebGl",
				"webViewDisableAudioContext",
			}},
			{Parent: "webViewUrlDataMonitor", Children: []string{
				"webViewUrlDataMonitorAutoCopy",
				"webViewUrlDataMonitorAutoOpen",
				"webViewUrlDataMonitorFilter",
				"webViewUrlDataMonitorFilterStrings",
				"webViewUrlDataMonitorRegularExpression",
				"webViewUrlDataMonitorShowJavaScriptUrls",
				"webViewUrlDataMonitorShowOverrideUrlLoading",
				"webViewUrlDataMonitorUrlDecode",
			}},
			{Parent: "showWebViewSourceCode", Children: []string{
				"showWebViewIFrameSourceCode",
				"showWebViewSourceCodeFilter",
				"showWebViewSourceCodeFilterStrings",
				"showWebViewSourceCodeRegularExpression",
			}},
		},
		Composites: []CompositeGroup{
			{
				Key:      "spoofGpsTrack",
				Category: "privacy",
				Members: []CompositeMember{
					{Key: "spoofGpsTrackPath", Default: Text("")},
					{Key: "spoofGpsTrackDuration", Default: Number(60)},
					{Key: "spoofGpsTrackUseElevationFromFile", Default: Bool(false)},
					{Key: "spoofGpsTrackBounceMode", Default: Bool(false)},
					{Key: "spoofGpsTrackStartInPausedMode", Default: Bool(false)},
					{Key: "spoofGpsTracks", Default: Sequence{}},
					{Key: "spoofGpsTrackIndex", Default: Number(0)},
				},
			},
		},
		ResetOnDisable: []ResetGroup{
			{
				Parent:   "deleteOnExit",
				Children: []string{"deleteFilesDirectoriesOnExit", "securelyDeleteFilesDirectoriesOnExit"},
			},
		},
	}
}
