package graph

import "sort"

// Destination is a device family a target is built for.
type Destination string

const (
	DestinationIPhone                    Destination = "iPhone"
	DestinationIPad                      Destination = "iPad"
	DestinationMac                       Destination = "mac"
	DestinationMacWithIPadDesign         Destination = "macWithiPadDesign"
	DestinationMacCatalyst               Destination = "macCatalyst"
	DestinationAppleWatch                Destination = "appleWatch"
	DestinationAppleTV                   Destination = "appleTv"
	DestinationAppleVision               Destination = "appleVision"
	DestinationAppleVisionWithIPadDesign Destination = "appleVisionWithiPadDesign"
)

// Platform is an SDK family, used to key deployment targets.
type Platform string

const (
	PlatformIOS      Platform = "iOS"
	PlatformMacOS    Platform = "macOS"
	PlatformTVOS     Platform = "tvOS"
	PlatformWatchOS  Platform = "watchOS"
	PlatformVisionOS Platform = "visionOS"
)

// PlatformFilter restricts a dependency edge to a subset of platforms.
type PlatformFilter string

const (
	PlatformFilterIOS       PlatformFilter = "ios"
	PlatformFilterMacOS     PlatformFilter = "macos"
	PlatformFilterTVOS      PlatformFilter = "tvos"
	PlatformFilterCatalyst  PlatformFilter = "catalyst"
	PlatformFilterDriverKit PlatformFilter = "driverkit"
	PlatformFilterWatchOS   PlatformFilter = "watchos"
	PlatformFilterVisionOS  PlatformFilter = "visionos"
)

type destinationInfo struct {
	platform Platform
	filter   PlatformFilter
}

var destinations = map[Destination]destinationInfo{
	DestinationIPhone:                    {PlatformIOS, PlatformFilterIOS},
	DestinationIPad:                      {PlatformIOS, PlatformFilterIOS},
	DestinationMacWithIPadDesign:         {PlatformIOS, PlatformFilterIOS},
	DestinationAppleVisionWithIPadDesign: {PlatformIOS, PlatformFilterIOS},
	DestinationMacCatalyst:               {PlatformIOS, PlatformFilterCatalyst},
	DestinationMac:                       {PlatformMacOS, PlatformFilterMacOS},
	DestinationAppleTV:                   {PlatformTVOS, PlatformFilterTVOS},
	DestinationAppleWatch:                {PlatformWatchOS, PlatformFilterWatchOS},
	DestinationAppleVision:               {PlatformVisionOS, PlatformFilterVisionOS},
}

// Valid reports whether d is a known destination.
func (d Destination) Valid() bool {
	_, ok := destinations[d]
	return ok
}

// Platform returns the SDK family d builds against.
func (d Destination) Platform() Platform {
	return destinations[d].platform
}

// PlatformFilter returns the dependency filter matching d.
func (d Destination) PlatformFilter() PlatformFilter {
	return destinations[d].filter
}

// Destinations is an ordered set of destinations.
type Destinations []Destination

// ExclusiveTo reports whether every destination builds against platform.
// An empty set is exclusive to nothing.
func (ds Destinations) ExclusiveTo(platform Platform) bool {
	if len(ds) == 0 {
		return false
	}
	for _, d := range ds {
		if d.Platform() != platform {
			return false
		}
	}
	return true
}

// PlatformFilters returns the unique, sorted filters for ds.
func (ds Destinations) PlatformFilters() []PlatformFilter {
	seen := make(map[PlatformFilter]bool, len(ds))
	var filters []PlatformFilter
	for _, d := range ds {
		f := d.PlatformFilter()
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		filters = append(filters, f)
	}
	sort.Slice(filters, func(i, j int) bool { return filters[i] < filters[j] })
	return filters
}

// DeploymentTargets maps a platform to its minimum OS version.
type DeploymentTargets map[Platform]string
