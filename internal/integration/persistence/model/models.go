package model

// All returns every model managed by auto-migration, parents before children.
func All() []interface{} {
	return []interface{}{
		&CategoryModel{},
		&SubCategoryModel{},
		&PaymentTypeModel{},
		&UserModel{},
		&ExpenseModel{},
		&RecurringExpenseModel{},
	}
}
