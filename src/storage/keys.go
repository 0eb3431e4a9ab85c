package storage

import "fmt"

// Key templates, every key is prefixed with a namespace:
//
//	{ns}.realm_{realm}              realm record
//	{ns}.realm_{realm}_clients      list of client identifiers of a realm
//	{ns}.realm_{realm}_users        list of user identifiers of a realm
//	{ns}.{realm}_client_{client}    client record
//	{ns}.{realm}_user_{user}        user record
const (
	realmKeyTemplate        = "%s.realm_%s"
	realmClientsKeyTemplate = "%s.realm_%s_clients"
	realmUsersKeyTemplate   = "%s.realm_%s_users"
	clientKeyTemplate       = "%s.%s_client_%s"
	userKeyTemplate         = "%s.%s_user_%s"
)

func RealmKey(namespace, realm string) string {
	return fmt.Sprintf(realmKeyTemplate, namespace, realm)
}

func RealmClientsKey(namespace, realm string) string {
	return fmt.Sprintf(realmClientsKeyTemplate, namespace, realm)
}

func RealmUsersKey(namespace, realm string) string {
	return fmt.Sprintf(realmUsersKeyTemplate, namespace, realm)
}

func ClientKey(namespace, realm, client string) string {
	return fmt.Sprintf(clientKeyTemplate, namespace, realm, client)
}

func UserKey(namespace, realm, user string) string {
	return fmt.Sprintf(userKeyTemplate, namespace, realm, user)
}
