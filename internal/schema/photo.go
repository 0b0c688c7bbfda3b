package schema

// Photo is the photo metadata resource. Image binaries are stored outside the
// database; only the path travels through the API.
var Photo = &Resource{
	Table:      "Photo",
	Key:        "PhotoID",
	ForeignKey: "AssessmentID",
	OrderBy:    `"PhotoID" DESC`,
	Columns: []Column{
		{Name: "AssessmentID", Kind: Int},
		{Name: "FilePath", Kind: Text},
		{Name: "AssociatedMeasurement", Kind: Text},
	},
}
