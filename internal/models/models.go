// Package models holds the typed views of the assessment records exchanged
// over the API. The server itself works with schema-driven row maps; these
// structs exist for clients, documentation and tests that want static types.
package models

// AssessmentProfile is the top-level record for one geotechnical incident:
// where it is, who reported it and who to contact.
type AssessmentProfile struct {
	AssessmentID             int64    `json:"AssessmentID"`
	Date                     *string  `json:"Date"`
	District                 *string  `json:"District"`
	County                   *string  `json:"County"`
	Route                    *string  `json:"Route"`
	PostMile                 *float64 `json:"PostMile"`
	EA                       *string  `json:"EA"`
	ProjectID                *string  `json:"ProjectID"`
	DateIncidentReported     *string  `json:"DateIncidentReported"`
	Latitude                 *float64 `json:"Latitude"`
	Longitude                *float64 `json:"Longitude"`
	LastName                 *string  `json:"LastName"`
	FirstName                *string  `json:"FirstName"`
	SNumber                  *string  `json:"SNumber"`
	DistrictContactLastName  *string  `json:"DistrictContactLastName"`
	DistrictContactFirstName *string  `json:"DistrictContactFirstName"`
	DistrictContactSNumber   *string  `json:"DistrictContactSNumber"`
	DistrictContactPhone     *string  `json:"DistrictContactPhone"`
	DistrictContactCellPhone *string  `json:"DistrictContactCellPhone"`
	AssessmentStatus         *string  `json:"AssessmentStatus"`
	Notes                    *string  `json:"Notes"`
	IsUploaded               Flag     `json:"IsUploaded"`
}

// Photo is a reference to an image captured during an assessment.
type Photo struct {
	PhotoID               int64   `json:"PhotoID"`
	AssessmentID          int64   `json:"AssessmentID"`
	FilePath              *string `json:"FilePath"`
	AssociatedMeasurement *string `json:"AssociatedMeasurement"`
}

// AssessmentDetails is the extended survey sheet for one assessment. The
// many Flag fields mirror the checkboxes on the field form.
type AssessmentDetails struct {
	AssessmentDetailsID int64 `json:"AssessmentDetailsID"`
	AssessmentID        int64 `json:"AssessmentID"`

	// incident type
	IsFall               Flag `json:"IsFall"`
	IsTopple             Flag `json:"IsTopple"`
	IsSlide              Flag `json:"IsSlide"`
	IsSpread             Flag `json:"IsSpread"`
	IsFlow               Flag `json:"IsFlow"`
	IsCompound           Flag `json:"IsCompound"`
	IsErosion            Flag `json:"IsErosion"`
	IsWashout            Flag `json:"IsWashout"`
	IsSurfacialSloughing Flag `json:"IsSurfacialSloughing"`
	IsScouredToe         Flag `json:"IsScouredToe"`
	IsIndentedByRocks    Flag `json:"IsIndentedByRocks"`
	HasTorrentSurgeFlood Flag `json:"HasTorrentSurgeFlood"`

	// distribution
	IsAdvancing     Flag `json:"IsAdvancing"`
	IsRetrogressing Flag `json:"IsRetrogressing"`
	IsEnlarging     Flag `json:"IsEnlarging"`
	IsWidening      Flag `json:"IsWidening"`
	IsConfined      Flag `json:"IsConfined"`
	IsMoving        Flag `json:"IsMoving"`

	// highway status
	IsHighwayOpen    Flag   `json:"IsHighwayOpen"`
	IsShoulderClosed Flag   `json:"IsShoulderClosed"`
	IsLaneClosed     Flag   `json:"IsLaneClosed"`
	IsOneWayClosed   Flag   `json:"IsOneWayClosed"`
	IsTwoWayClosed   Flag   `json:"IsTwoWayClosed"`
	ClosedLanes      *int64 `json:"ClosedLanes"`
	OpenedLanesCount *int64 `json:"OpenedLanesCount"`

	// material composition
	IsRock         Flag     `json:"IsRock"`
	IsSoil         Flag     `json:"IsSoil"`
	HasBedding     Flag     `json:"HasBedding"`
	HasJoints      Flag     `json:"HasJoints"`
	HasFractures   Flag     `json:"HasFractures"`
	ClayEstimate   *float64 `json:"ClayEstimate"`
	SiltEstimate   *float64 `json:"SiltEstimate"`
	SandEstimate   *float64 `json:"SandEstimate"`
	GravelEstimate *float64 `json:"GravelEstimate"`

	// vegetation coverage
	TreesCoverageOnSlope        *float64 `json:"TreesCoverageOnSlope"`
	BushesShrubsCoverageOnSlope *float64 `json:"BushesShrubsCoverageOnSlope"`
	GroundCoverCoverageOnSlope  *float64 `json:"GroundCoverCoverageOnSlope"`

	// dimensions (feet)
	SlopeHeight             *float64 `json:"SlopeHeight"`
	MainScarpHeight         *float64 `json:"MainScarpHeight"`
	OriginalSlope           *float64 `json:"OriginalSlope"`
	LandslideSlope          *float64 `json:"LandslideSlope"`
	LandslideLength         *float64 `json:"LandslideLength"`
	LandslideWidth          *float64 `json:"LandslideWidth"`
	RoadwayEncroachedLength *float64 `json:"RoadwayEncroachedLength"`
	RoadwayEncroachedWidth  *float64 `json:"RoadwayEncroachedWidth"`

	// pavement/ground cracks
	IsPavementGroundCracks      Flag     `json:"IsPavementGroundCracks"`
	CrackLength                 *float64 `json:"CrackLength"`
	CrackDepth                  *float64 `json:"CrackDepth"`
	CrackVerticalDisplacement   *float64 `json:"CrackVerticalDisplacement"`
	CrackHorizontalDisplacement *float64 `json:"CrackHorizontalDisplacement"`
	CrackSettlement             *float64 `json:"CrackSettlement"`
	CrackBulge                  *float64 `json:"CrackBulge"`

	// hydrology
	IsDry          Flag `json:"IsDry"`
	IsMoist        Flag `json:"IsMoist"`
	IsWet          Flag `json:"IsWet"`
	IsFlowingWater Flag `json:"IsFlowingWater"`
	IsSeep         Flag `json:"IsSeep"`
	IsSpring       Flag `json:"IsSpring"`

	// drainage
	HasSurfaceRunoff     Flag `json:"HasSurfaceRunoff"`
	HasCloggedInlet      Flag `json:"HasCloggedInlet"`
	HasCompromisedDrains Flag `json:"HasCompromisedDrains"`

	// adjacent impact, confirmed and suspected
	HasImpactedAdjacentUtilities       Flag `json:"HasImpactedAdjacentUtilities"`
	HasImpactedAdjacentProperties      Flag `json:"HasImpactedAdjacentProperties"`
	HasImpactedAdjacentStructures      Flag `json:"HasImpactedAdjacentStructures"`
	HasMaybeImpactedAdjacentUtilities  Flag `json:"HasMaybeImpactedAdjacentUtilities"`
	HasMaybeImpactedAdjacentProperties Flag `json:"HasMaybeImpactedAdjacentProperties"`
	HasMaybeImpactedAdjacentStructures Flag `json:"HasMaybeImpactedAdjacentStructures"`

	// immediate actions
	IsImmediateActionCloseHighWayBothDirections          Flag `json:"IsImmediateActionCloseHighWayBothDirections"`
	IsImmediateActionCloseHighwayOneDirection            Flag `json:"IsImmediateActionCloseHighwayOneDirection"`
	IsImmediateActionOpenHighwayShoulder                 Flag `json:"IsImmediateActionOpenHighwayShoulder"`
	IsImmediateActionOpenHighwayTraffic                  Flag `json:"IsImmediateActionOpenHighwayTraffic"`
	IsImmediateActionPlaceKRailOrFence                   Flag `json:"IsImmediateActionPlaceKRailOrFence"`
	IsImmediateActionRemoveLandslideDebris               Flag `json:"IsImmediateActionRemoveLandslideDebris"`
	IsImmediateActionRemoveCulvertBlockage               Flag `json:"IsImmediateActionRemoveCulvertBlockage"`
	IsImmediateActionCoverSlopeWithPlastic               Flag `json:"IsImmediateActionCoverSlopeWithPlastic"`
	IsImmediateActionDivertSurfaceWaterRunoff            Flag `json:"IsImmediateActionDivertSurfaceWaterRunoff"`
	IsImmediateActionDewaterWithPumpTrench               Flag `json:"IsImmediateActionDewaterWithPumpTrench"`
	IsImmediateActionDewaterWithHorizontalDrains         Flag `json:"IsImmediateActionDewaterWithHorizontalDrains"`
	IsImmediateActionButtressToeOfLandslide              Flag `json:"IsImmediateActionButtressToeOfLandslide"`
	IsImmediateActionConstructTemporaryShoring           Flag `json:"IsImmediateActionConstructTemporaryShoring"`
	IsImmediateActionPlaceRockSlopeProtection            Flag `json:"IsImmediateActionPlaceRockSlopeProtection"`
	IsImmediateActionReconstructSlopeToOriginalCondition Flag `json:"IsImmediateActionReconstructSlopeToOriginalCondition"`
	IsImmediateActionReconstructSlopeWithGeosynthetics   Flag `json:"IsImmediateActionReconstructSlopeWithGeosynthetics"`
	IsImmediateActionRoutineVisualMonitor                Flag `json:"IsImmediateActionRoutineVisualMonitor"`

	// follow-up actions
	IsFollowUpActionOpenHighwayShoulder                 Flag `json:"IsFollowUpActionOpenHighwayShoulder"`
	IsFollowUpActionOpenHighwayTraffic                  Flag `json:"IsFollowUpActionOpenHighwayTraffic"`
	IsFollowUpActionSurveySite                          Flag `json:"IsFollowUpActionSurveySite"`
	IsFollowUpActionGeologicalMapping                   Flag `json:"IsFollowUpActionGeologicalMapping"`
	IsFollowUpActionSubsurfaceExploration               Flag `json:"IsFollowUpActionSubsurfaceExploration"`
	IsFollowUpActionDesignAndPlans                      Flag `json:"IsFollowUpActionDesignAndPlans"`
	IsFollowUpActionInstallErosionControl               Flag `json:"IsFollowUpActionInstallErosionControl"`
	IsFollowUpActionRepairCulvertDrainagePipe           Flag `json:"IsFollowUpActionRepairCulvertDrainagePipe"`
	IsFollowUpActionDewaterWithHorizontalDrains         Flag `json:"IsFollowUpActionDewaterWithHorizontalDrains"`
	IsFollowUpActionButtressToeOfLandslide              Flag `json:"IsFollowUpActionButtressToeOfLandslide"`
	IsFollowUpActionConstructTemporaryShoring           Flag `json:"IsFollowUpActionConstructTemporaryShoring"`
	IsFollowUpActionPlaceRockSlopeProtection            Flag `json:"IsFollowUpActionPlaceRockSlopeProtection"`
	IsFollowUpActionReconstructSlopeToOriginalCondition Flag `json:"IsFollowUpActionReconstructSlopeToOriginalCondition"`
	IsFollowUpActionReconstructSlopeWithGeosynthetics   Flag `json:"IsFollowUpActionReconstructSlopeWithGeosynthetics"`
	IsFollowUpActionRoutineVisualMonitor                Flag `json:"IsFollowUpActionRoutineVisualMonitor"`

	ObservationsAndNotes *string `json:"ObservationsAndNotes"`
}
