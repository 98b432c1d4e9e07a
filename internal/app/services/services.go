// Package services holds the business operations between controllers and
// repositories.
//
// Services defined in this package:
// - CourseService: validates, stamps and persists courses
package services
