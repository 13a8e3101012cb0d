package metro

import "fmt"

func toRoute(d Document) (Route, error) {
	var (
		route Route
		err   error
	)
	if route.ID, err = requiredInt(d, "id"); err != nil {
		return Route{}, err
	}
	if route.DisplayName, err = requiredString(d, "display_name"); err != nil {
		return Route{}, err
	}
	if route.BackgroundColor, err = requiredString(d, "bg_color"); err != nil {
		return Route{}, err
	}
	if route.ForegroundColor, err = requiredString(d, "fg_color"); err != nil {
		return Route{}, err
	}
	return route, nil
}

// toStop accepts stops without id or coordinates; the API omits them on some
// endpoints and nothing documents which fields are guaranteed.
func toStop(d Document) (Stop, error) {
	var (
		stop Stop
		err  error
	)
	if stop.ID, err = optionalInt(d, "id"); err != nil {
		return Stop{}, err
	}
	if stop.DisplayName, err = requiredString(d, "display_name"); err != nil {
		return Stop{}, err
	}
	if stop.Latitude, err = optionalFloat(d, "latitude"); err != nil {
		return Stop{}, err
	}
	if stop.Longitude, err = optionalFloat(d, "longitude"); err != nil {
		return Stop{}, err
	}
	return stop, nil
}

// toVehicle treats only run_id and route_id as optional. That split mirrors
// what the API has been observed to drop, not any published contract.
func toVehicle(d Document) (Vehicle, error) {
	var (
		vehicle Vehicle
		err     error
	)
	if vehicle.ID, err = requiredInt(d, "id"); err != nil {
		return Vehicle{}, err
	}
	if vehicle.Heading, err = requiredInt(d, "heading"); err != nil {
		return Vehicle{}, err
	}
	if vehicle.RunID, err = optionalString(d, "run_id"); err != nil {
		return Vehicle{}, err
	}
	if vehicle.Predictable, err = requiredBool(d, "predictable"); err != nil {
		return Vehicle{}, err
	}
	if vehicle.RouteID, err = optionalInt(d, "route_id"); err != nil {
		return Vehicle{}, err
	}
	if vehicle.SecondsSinceReport, err = requiredInt(d, "seconds_since_report"); err != nil {
		return Vehicle{}, err
	}
	if vehicle.Latitude, err = requiredFloat(d, "latitude"); err != nil {
		return Vehicle{}, err
	}
	if vehicle.Longitude, err = requiredFloat(d, "longitude"); err != nil {
		return Vehicle{}, err
	}
	return vehicle, nil
}

// toPrediction requires every field. As with vehicles this is inferred from
// observed responses.
func toPrediction(d Document) (Prediction, error) {
	var (
		prediction Prediction
		err        error
	)
	if prediction.BlockID, err = requiredString(d, "block_id"); err != nil {
		return Prediction{}, err
	}
	if prediction.RunID, err = requiredString(d, "run_id"); err != nil {
		return Prediction{}, err
	}
	if prediction.RouteID, err = requiredInt(d, "route_id"); err != nil {
		return Prediction{}, err
	}
	if prediction.IsDeparting, err = requiredBool(d, "is_departing"); err != nil {
		return Prediction{}, err
	}
	if prediction.Minutes, err = requiredInt(d, "minutes"); err != nil {
		return Prediction{}, err
	}
	if prediction.Seconds, err = requiredInt(d, "seconds"); err != nil {
		return Prediction{}, err
	}
	return prediction, nil
}

// mapItems converts every element of the "items" field in order. The result
// is never nil, so an absent list serializes as [].
func mapItems[T any](d Document, convert func(Document) (T, error)) ([]T, error) {
	items, err := d.Items()
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(items))
	for i, item := range items {
		v, err := convert(item)
		if err != nil {
			return nil, withPrefix(err, fmt.Sprintf("%s[%d].", itemsField, i))
		}
		out = append(out, v)
	}
	return out, nil
}

func toStopList(d Document) (StopList, error) {
	stops, err := mapItems(d, toStop)
	if err != nil {
		return StopList{}, err
	}
	return StopList{Stops: stops}, nil
}

func toVehicleList(d Document) (VehicleList, error) {
	vehicles, err := mapItems(d, toVehicle)
	if err != nil {
		return VehicleList{}, err
	}
	return VehicleList{Vehicles: vehicles}, nil
}

func toPredictionList(d Document) (PredictionList, error) {
	predictions, err := mapItems(d, toPrediction)
	if err != nil {
		return PredictionList{}, err
	}
	return PredictionList{Predictions: predictions}, nil
}
