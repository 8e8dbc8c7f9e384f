package models

// All returns every model, in migration order
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&PostModel{},
		&ProjectModel{},
		&LeadModel{},
		&CommentModel{},
		&UploadModel{},
		&NotificationModel{},
		&AuditLogModel{},
		&PageVisitModel{},
	}
}
