package domain

// milestoneOrder — фиксированный порядок вех прогресса заказа.
// Pending вех не достигает; Cancelled выводится отдельным терминальным
// состоянием вне прогресс-бара.
var milestoneOrder = []OrderStatus{
	OrderStatusConfirmed,
	OrderStatusProcessing,
	OrderStatusReady,
	OrderStatusCompleted,
}

// Milestone — одна веха прогресса для отображения.
type Milestone struct {
	Status  OrderStatus
	Label   string
	Reached bool
}

// Projection — результат проекции статуса на шкалу прогресса.
type Projection struct {
	Status OrderStatus
	Label  string
	// Percent — заполнение прогресс-бара: 0/25/50/75/100.
	Percent int
	// Cancelled выставляется для отменённого заказа: вехи не
	// достигнуты, состояние рисуется как терминальная ошибка.
	Cancelled  bool
	Milestones []Milestone
}

// StatusLabel — тотальная функция отображения статуса в подпись.
// Неизвестное значение не роняет отображение, а даёт подпись ожидания.
func StatusLabel(status OrderStatus) string {
	switch status {
	case OrderStatusConfirmed:
		return "Confirmé"
	case OrderStatusProcessing:
		return "En préparation"
	case OrderStatusReady:
		return "Prêt à être retiré"
	case OrderStatusCompleted:
		return "Livré"
	case OrderStatusCancelled:
		return "Annulé"
	default:
		return "En attente"
	}
}

// milestoneLabel возвращает подпись вехи с учётом способа получения:
// для доставки заказ "отправлен"/"доставлен", для самовывоза —
// "готов"/"récupérée".
func milestoneLabel(milestone OrderStatus, method DeliveryMethod) string {
	switch milestone {
	case OrderStatusConfirmed:
		return "Confirmée"
	case OrderStatusProcessing:
		return "En préparation"
	case OrderStatusReady:
		if method == DeliveryMethodDelivery {
			return "Expédiée"
		}
		return "Prête"
	case OrderStatusCompleted:
		if method == DeliveryMethodDelivery {
			return "Livrée"
		}
		return "Récupérée"
	default:
		return "En attente"
	}
}

// Project проецирует статус заказа на фиксированную шкалу вех.
// Веха считается достигнутой, если она стоит в порядке не позже
// текущего статуса; Cancelled не достигает ни одной.
func Project(status OrderStatus, method DeliveryMethod) Projection {
	projection := Projection{
		Status:    status,
		Label:     StatusLabel(status),
		Cancelled: status == OrderStatusCancelled,
	}

	reachedUpTo := -1
	if !projection.Cancelled {
		for i, milestone := range milestoneOrder {
			if milestone == status {
				reachedUpTo = i
				break
			}
		}
	}

	projection.Milestones = make([]Milestone, 0, len(milestoneOrder))
	for i, milestone := range milestoneOrder {
		projection.Milestones = append(projection.Milestones, Milestone{
			Status:  milestone,
			Label:   milestoneLabel(milestone, method),
			Reached: i <= reachedUpTo,
		})
	}
	projection.Percent = (reachedUpTo + 1) * 100 / len(milestoneOrder)

	return projection
}

// IsTerminal сообщает, что заказ больше не будет менять статус.
func IsTerminal(status OrderStatus) bool {
	return status == OrderStatusCompleted || status == OrderStatusCancelled
}
