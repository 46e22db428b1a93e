// file: internals/features/academics/registry/service/registry_seed.go
package service

// seedCourses: fallback kalau REGISTRY_SOURCE_URL tidak diset (dev/lokal).
var seedCourses = []registrySourceCourse{
	{Code: "CS101", Name: "Computer Science", Degree: "bachelor", Modality: "on_campus", Institution: "Federal Institute of Technology", Campuses: []string{"Main"}},
	{Code: "SE102", Name: "Software Engineering", Degree: "bachelor", Modality: "on_campus", Institution: "Federal Institute of Technology", Campuses: []string{"Main", "North"}},
	{Code: "IS103", Name: "Information Systems", Degree: "bachelor", Modality: "hybrid", Institution: "Federal Institute of Technology", Campuses: []string{"Main"}},
	{Code: "CE104", Name: "Computer Engineering", Degree: "bachelor", Modality: "on_campus", Institution: "Federal Institute of Technology", Campuses: []string{"Main"}},
	{Code: "DS105", Name: "Data Science", Degree: "technologist", Modality: "distance", Institution: "Open University Center", Campuses: nil},
	{Code: "MATH201", Name: "Mathematics", Degree: "licentiate", Modality: "on_campus", Institution: "State University", Campuses: []string{"Central"}},
	{Code: "PHYS202", Name: "Physics", Degree: "licentiate", Modality: "on_campus", Institution: "State University", Campuses: []string{"Central"}},
	{Code: "ADM301", Name: "Business Administration", Degree: "bachelor", Modality: "hybrid", Institution: "State University", Campuses: []string{"Central", "South"}},
}
