// Package scope implementa las reglas de visibilidad por fila: para cada
// entidad, qué subconjunto de filas puede ver (y por tanto modificar o
// borrar) el usuario que hace la petición.
//
// Cada regla es una función libre User -> Filter con un switch exhaustivo
// sobre el rol. Las recuperaciones, actualizaciones y borrados pasan por el
// mismo filtro, así una fila fuera del alcance responde "no encontrado" y
// nunca confirma su existencia.
package scope

import "github.com/fleetflow/fleetflow-api/internal/domain/entity"

// Companies: admin ve todas; el resto solo la empresa a la que pertenece.
func Companies(u *entity.User) Filter {
	switch u.Role {
	case entity.RoleAdmin:
		return All()
	case entity.RoleManager, entity.RoleWorker:
		var f Filter
		f.Where("id = ?", u.CompanyID)
		return f
	default:
		return None()
	}
}

// Users: admin ve todos; el resto ve los usuarios de su empresa excluyendo
// cuentas admin.
func Users(u *entity.User) Filter {
	switch u.Role {
	case entity.RoleAdmin:
		return All()
	case entity.RoleManager, entity.RoleWorker:
		var f Filter
		f.Where("company_id = ?", u.CompanyID)
		f.Where("role <> ?", string(entity.RoleAdmin))
		return f
	default:
		return None()
	}
}

// Vehicles: admin ve todos; el resto los de su empresa.
func Vehicles(u *entity.User) Filter {
	switch u.Role {
	case entity.RoleAdmin:
		return All()
	case entity.RoleManager, entity.RoleWorker:
		var f Filter
		f.Where("company_id = ?", u.CompanyID)
		return f
	default:
		return None()
	}
}

// Documents: visibles para todo usuario autenticado. Decisión deliberada del
// modelo, no un descuido: los documentos no se filtran por empresa.
func Documents(u *entity.User) Filter {
	if !u.Role.Valid() {
		return None()
	}
	return All()
}

// Events: como Documents, sin filtrado por fila.
func Events(u *entity.User) Filter {
	if !u.Role.Valid() {
		return None()
	}
	return All()
}

// Insurances: admin ve todas; el resto las pólizas de vehículos de su empresa.
func Insurances(u *entity.User) Filter {
	switch u.Role {
	case entity.RoleAdmin:
		return All()
	case entity.RoleManager, entity.RoleWorker:
		var f Filter
		f.Where("vehicle_id IN (SELECT id FROM vehicles WHERE company_id = ?)", u.CompanyID)
		return f
	default:
		return None()
	}
}

// Refuels: admin ve todos; manager los de usuarios de su empresa; worker
// únicamente los suyos.
func Refuels(u *entity.User) Filter {
	switch u.Role {
	case entity.RoleAdmin:
		return All()
	case entity.RoleManager:
		var f Filter
		f.Where("user_id IN (SELECT id FROM users WHERE company_id = ?)", u.CompanyID)
		return f
	case entity.RoleWorker:
		var f Filter
		f.Where("user_id = ?", u.ID)
		return f
	default:
		return None()
	}
}

// Reservations: admin ve todas; el resto solo las propias.
func Reservations(u *entity.User) Filter {
	switch u.Role {
	case entity.RoleAdmin:
		return All()
	case entity.RoleManager, entity.RoleWorker:
		var f Filter
		f.Where("user_id = ?", u.ID)
		return f
	default:
		return None()
	}
}

// Comments: admin ve todos; manager los propios más los de sus subordinados
// (workers de su empresa); worker solo los propios (su conjunto de
// subordinados es vacío).
func Comments(u *entity.User) Filter {
	switch u.Role {
	case entity.RoleAdmin:
		return All()
	case entity.RoleManager:
		var f Filter
		f.Where(
			"(user_id = ? OR user_id IN (SELECT id FROM users WHERE company_id = ? AND role = ?))",
			u.ID, u.CompanyID, string(entity.RoleWorker),
		)
		return f
	case entity.RoleWorker:
		var f Filter
		f.Where("user_id = ?", u.ID)
		return f
	default:
		return None()
	}
}
