// Package models provides the shared data model for flaskforge.
//
// # Project Spec
//
// A [ProjectSpec] records the four choices that drive generation: the
// project name, the database backend, and the auth and API flags. It is
// built once from user input and read by every file generator.
//
//	spec := models.ProjectSpec{Name: "blog", Database: models.DatabasePostgreSQL, Auth: true}
//	if err := spec.Validate(); err != nil {
//	    return err
//	}
//
// # Databases
//
// [Database] is a closed enum. Parse user input with [ParseDatabase]:
//
//	db, err := models.ParseDatabase("PostgreSQL") // models.DatabasePostgreSQL
//	dbs := models.Databases()                     // sqlite, postgresql, mysql, none
package models
