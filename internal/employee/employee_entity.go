package employee

// Employee is looked up by the leave workflow to address notifications.
// Records are replaced as a whole by Repository.Save.
type Employee struct {
	ID    int64  `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name  string `gorm:"type:varchar(150);not null" json:"name"`
	Email string `gorm:"type:varchar(255);not null;uniqueIndex:uq_employee_email" json:"email"`
}

func (Employee) TableName() string {
	return "employees"
}
