package schema

// Profile is the AssessmentProfile resource: the top-level record identifying
// a site, location and contacts for one geotechnical incident.
var Profile = &Resource{
	Table:   "AssessmentProfile",
	Key:     "AssessmentID",
	OrderBy: `"AssessmentID" DESC`,
	Columns: []Column{
		{Name: "Date", Kind: Date},
		{Name: "District", Kind: Text},
		{Name: "County", Kind: Text},
		{Name: "Route", Kind: Text},
		{Name: "PostMile", Kind: Number},
		{Name: "EA", Kind: Text},
		{Name: "ProjectID", Kind: Text},
		{Name: "DateIncidentReported", Kind: Date},
		{Name: "Latitude", Kind: Number},
		{Name: "Longitude", Kind: Number},
		{Name: "LastName", Kind: Text},
		{Name: "FirstName", Kind: Text},
		{Name: "SNumber", Kind: Text},
		{Name: "DistrictContactLastName", Kind: Text},
		{Name: "DistrictContactFirstName", Kind: Text},
		{Name: "DistrictContactSNumber", Kind: Text},
		{Name: "DistrictContactPhone", Kind: Text},
		{Name: "DistrictContactCellPhone", Kind: Text},
		{Name: "AssessmentStatus", Kind: Text},
		{Name: "Notes", Kind: Text},
		{Name: "IsUploaded", Kind: Flag},
	},
}
