package schema

// Details is the AssessmentDetails resource: the extended survey answers for
// one assessment. Flag columns store 0/1.
var Details = &Resource{
	Table:      "AssessmentDetails",
	Key:        "AssessmentDetailsID",
	ForeignKey: "AssessmentID",
	OrderBy:    `"AssessmentDetailsID" ASC`,
	Columns: []Column{
		{Name: "AssessmentID", Kind: Int},

		// incident type
		{Name: "IsFall", Kind: Flag},
		{Name: "IsTopple", Kind: Flag},
		{Name: "IsSlide", Kind: Flag},
		{Name: "IsSpread", Kind: Flag},
		{Name: "IsFlow", Kind: Flag},
		{Name: "IsCompound", Kind: Flag},
		{Name: "IsErosion", Kind: Flag},
		{Name: "IsWashout", Kind: Flag},
		{Name: "IsSurfacialSloughing", Kind: Flag},
		{Name: "IsScouredToe", Kind: Flag},
		{Name: "IsIndentedByRocks", Kind: Flag},
		{Name: "HasTorrentSurgeFlood", Kind: Flag},

		// distribution
		{Name: "IsAdvancing", Kind: Flag},
		{Name: "IsRetrogressing", Kind: Flag},
		{Name: "IsEnlarging", Kind: Flag},
		{Name: "IsWidening", Kind: Flag},
		{Name: "IsConfined", Kind: Flag},
		{Name: "IsMoving", Kind: Flag},

		// highway status
		{Name: "IsHighwayOpen", Kind: Flag},
		{Name: "IsShoulderClosed", Kind: Flag},
		{Name: "IsLaneClosed", Kind: Flag},
		{Name: "IsOneWayClosed", Kind: Flag},
		{Name: "IsTwoWayClosed", Kind: Flag},
		{Name: "ClosedLanes", Kind: Int},
		{Name: "OpenedLanesCount", Kind: Int},

		// material composition
		{Name: "IsRock", Kind: Flag},
		{Name: "IsSoil", Kind: Flag},
		{Name: "HasBedding", Kind: Flag},
		{Name: "HasJoints", Kind: Flag},
		{Name: "HasFractures", Kind: Flag},
		{Name: "ClayEstimate", Kind: Number},
		{Name: "SiltEstimate", Kind: Number},
		{Name: "SandEstimate", Kind: Number},
		{Name: "GravelEstimate", Kind: Number},

		// vegetation coverage
		{Name: "TreesCoverageOnSlope", Kind: Number},
		{Name: "BushesShrubsCoverageOnSlope", Kind: Number},
		{Name: "GroundCoverCoverageOnSlope", Kind: Number},

		// dimensions (feet)
		{Name: "SlopeHeight", Kind: Number},
		{Name: "MainScarpHeight", Kind: Number},
		{Name: "OriginalSlope", Kind: Number},
		{Name: "LandslideSlope", Kind: Number},
		{Name: "LandslideLength", Kind: Number},
		{Name: "LandslideWidth", Kind: Number},
		{Name: "RoadwayEncroachedLength", Kind: Number},
		{Name: "RoadwayEncroachedWidth", Kind: Number},

		// pavement/ground cracks
		{Name: "IsPavementGroundCracks", Kind: Flag},
		{Name: "CrackLength", Kind: Number},
		{Name: "CrackDepth", Kind: Number},
		{Name: "CrackVerticalDisplacement", Kind: Number},
		{Name: "CrackHorizontalDisplacement", Kind: Number},
		{Name: "CrackSettlement", Kind: Number},
		{Name: "CrackBulge", Kind: Number},

		// hydrology
		{Name: "IsDry", Kind: Flag},
		{Name: "IsMoist", Kind: Flag},
		{Name: "IsWet", Kind: Flag},
		{Name: "IsFlowingWater", Kind: Flag},
		{Name: "IsSeep", Kind: Flag},
		{Name: "IsSpring", Kind: Flag},

		// drainage
		{Name: "HasSurfaceRunoff", Kind: Flag},
		{Name: "HasCloggedInlet", Kind: Flag},
		{Name: "HasCompromisedDrains", Kind: Flag},

		// adjacent impact, confirmed and suspected
		{Name: "HasImpactedAdjacentUtilities", Kind: Flag},
		{Name: "HasImpactedAdjacentProperties", Kind: Flag},
		{Name: "HasImpactedAdjacentStructures", Kind: Flag},
		{Name: "HasMaybeImpactedAdjacentUtilities", Kind: Flag},
		{Name: "HasMaybeImpactedAdjacentProperties", Kind: Flag},
		{Name: "HasMaybeImpactedAdjacentStructures", Kind: Flag},

		// immediate actions
		{Name: "IsImmediateActionCloseHighWayBothDirections", Kind: Flag},
		{Name: "IsImmediateActionCloseHighwayOneDirection", Kind: Flag},
		{Name: "IsImmediateActionOpenHighwayShoulder", Kind: Flag},
		{Name: "IsImmediateActionOpenHighwayTraffic", Kind: Flag},
		{Name: "IsImmediateActionPlaceKRailOrFence", Kind: Flag},
		{Name: "IsImmediateActionRemoveLandslideDebris", Kind: Flag},
		{Name: "IsImmediateActionRemoveCulvertBlockage", Kind: Flag},
		{Name: "IsImmediateActionCoverSlopeWithPlastic", Kind: Flag},
		{Name: "IsImmediateActionDivertSurfaceWaterRunoff", Kind: Flag},
		{Name: "IsImmediateActionDewaterWithPumpTrench", Kind: Flag},
		{Name: "IsImmediateActionDewaterWithHorizontalDrains", Kind: Flag},
		{Name: "IsImmediateActionButtressToeOfLandslide", Kind: Flag},
		{Name: "IsImmediateActionConstructTemporaryShoring", Kind: Flag},
		{Name: "IsImmediateActionPlaceRockSlopeProtection", Kind: Flag},
		{Name: "IsImmediateActionReconstructSlopeToOriginalCondition", Kind: Flag},
		{Name: "IsImmediateActionReconstructSlopeWithGeosynthetics", Kind: Flag},
		{Name: "IsImmediateActionRoutineVisualMonitor", Kind: Flag},

		// follow-up actions
		{Name: "IsFollowUpActionOpenHighwayShoulder", Kind: Flag},
		{Name: "IsFollowUpActionOpenHighwayTraffic", Kind: Flag},
		{Name: "IsFollowUpActionSurveySite", Kind: Flag},
		{Name: "IsFollowUpActionGeologicalMapping", Kind: Flag},
		{Name: "IsFollowUpActionSubsurfaceExploration", Kind: Flag},
		{Name: "IsFollowUpActionDesignAndPlans", Kind: Flag},
		{Name: "IsFollowUpActionInstallErosionControl", Kind: Flag},
		{Name: "IsFollowUpActionRepairCulvertDrainagePipe", Kind: Flag},
		{Name: "IsFollowUpActionDewaterWithHorizontalDrains", Kind: Flag},
		{Name: "IsFollowUpActionButtressToeOfLandslide", Kind: Flag},
		{Name: "IsFollowUpActionConstructTemporaryShoring", Kind: Flag},
		{Name: "IsFollowUpActionPlaceRockSlopeProtection", Kind: Flag},
		{Name: "IsFollowUpActionReconstructSlopeToOriginalCondition", Kind: Flag},
		{Name: "IsFollowUpActionReconstructSlopeWithGeosynthetics", Kind: Flag},
		{Name: "IsFollowUpActionRoutineVisualMonitor", Kind: Flag},

		{Name: "ObservationsAndNotes", Kind: Text},
	},
}
