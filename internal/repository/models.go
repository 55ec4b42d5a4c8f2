package repository

// Models lists every persisted row model for AutoMigrate.
func Models() []any {
	return []any{
		&userModel{},
		&studentModel{},
		&internshipModel{},
		&companyModel{},
	}
}
